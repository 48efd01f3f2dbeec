package inference

import (
	"testing"

	"sintomed/internal/catalog"
	"sintomed/internal/patient"
)

func TestBackwardChainUnknownDisease(t *testing.T) {
	e := fullEngine()

	ok, msg := e.BackwardChain("NO_EXISTE", patient.NewSymptoms())
	if ok {
		t.Fatal("unknown disease reported as possible")
	}
	if msg != "Enfermedad no encontrada en la base de conocimiento" {
		t.Errorf("message = %q", msg)
	}
}

func TestBackwardChainMissingRequired(t *testing.T) {
	e := fullEngine()

	ps := patient.NewSymptoms()
	ps.Add("FIEBRE", patient.SeverityGrave, 3, "")

	ok, msg := e.BackwardChain("GRIPE", ps)
	if ok {
		t.Fatal("diagnosis possible despite missing required symptom")
	}
	want := "Faltan síntomas requeridos: Fatiga extrema. No es posible este diagnóstico."
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestBackwardChainExcludingPresent(t *testing.T) {
	e := fullEngine()

	ps := patient.NewSymptoms()
	ps.Add("CONGESTION_NASAL", patient.SeverityModerado, 3, "")
	ps.Add("FIEBRE", patient.SeverityGrave, 2, "")

	ok, msg := e.BackwardChain("RESFRIADO", ps)
	if ok {
		t.Fatal("diagnosis possible despite excluding symptom")
	}
	want := "Presenta síntomas que excluyen este diagnóstico: Fiebre"
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestBackwardChainPossible(t *testing.T) {
	e := fullEngine()

	ps := patient.NewSymptoms()
	ps.Add("FIEBRE", patient.SeverityGrave, 3, "")
	ps.Add("FATIGA", patient.SeverityGrave, 3, "")
	ps.Add("DOLOR_CABEZA", patient.SeverityModerado, 3, "")
	ps.Add("TOS_SECA", patient.SeverityModerado, 2, "")

	ok, msg := e.BackwardChain("GRIPE", ps)
	if !ok {
		t.Fatalf("diagnosis not possible: %s", msg)
	}
	want := "Es posible. Cumple con todos los síntomas requeridos. " +
		"Presenta 33% de síntomas comunes. Se recomienda evaluación médica para confirmar."
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestBackwardChainEmptyCommonSet(t *testing.T) {
	reg := catalog.EmptySymptomRegistry()
	reg.Register(&catalog.Symptom{ID: "A", Name: "A", SeverityWeight: 1})
	kb := catalog.EmptyKnowledgeBase()
	kb.Register(&catalog.Disease{ID: "D", RequiredSymptoms: []string{"A"}})
	e := NewEngine(kb, reg)

	ps := patient.NewSymptoms()
	ps.Add("A", patient.SeverityLeve, 1, "")

	ok, msg := e.BackwardChain("D", ps)
	if !ok {
		t.Fatalf("diagnosis not possible: %s", msg)
	}
	want := "Es posible. Cumple con todos los síntomas requeridos. " +
		"Presenta 0% de síntomas comunes. Se recomienda evaluación médica para confirmar."
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}
