package inference

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"sintomed/internal/catalog"
	"sintomed/internal/patient"
)

func fullEngine() *Engine {
	return NewEngine(catalog.NewKnowledgeBase(), catalog.NewSymptomRegistry())
}

// fluReport is a textbook influenza presentation.
func fluReport() *patient.Symptoms {
	ps := patient.NewSymptoms()
	ps.Add("FIEBRE", patient.SeverityGrave, 3, "")
	ps.Add("FATIGA", patient.SeverityGrave, 3, "")
	ps.Add("DOLOR_CABEZA", patient.SeverityModerado, 3, "")
	ps.Add("DOLOR_MUSCULAR", patient.SeverityGrave, 3, "")
	ps.Add("TOS_SECA", patient.SeverityModerado, 2, "")
	ps.Add("ESCALOFRIOS", patient.SeverityGrave, 3, "")
	ps.Add("SUDORACION", patient.SeverityModerado, 2, "")
	return ps
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %.6f, want %.6f", name, got, want)
	}
}

func TestRequiredGateShortCircuits(t *testing.T) {
	reg := catalog.EmptySymptomRegistry()
	for _, id := range []string{"A", "B", "C"} {
		reg.Register(&catalog.Symptom{ID: id, Name: id, SeverityWeight: 1})
	}
	kb := catalog.EmptyKnowledgeBase()
	d := &catalog.Disease{
		ID:               "D",
		RequiredSymptoms: []string{"A", "B", "C"},
		CommonSymptoms:   []string{"A"},
	}
	kb.Register(d)
	e := NewEngine(kb, reg)

	ps := patient.NewSymptoms()
	ps.Add("A", patient.SeverityGrave, 5, "")

	r := e.evaluateDisease(d, ps)
	approx(t, "gated confidence", r.Confidence, (1.0/3.0)*0.3)
	if r.Explanation != "No cumple con síntomas requeridos principales" {
		t.Errorf("explanation = %q", r.Explanation)
	}
	if r.RiskLevel != RiskBajo {
		t.Errorf("risk = %s, want BAJO", r.RiskLevel)
	}
	if !reflect.DeepEqual(r.MissingKeySymptoms, []string{"B", "C"}) {
		t.Errorf("missing = %v, want [B C]", r.MissingKeySymptoms)
	}
	if !reflect.DeepEqual(r.MatchedSymptoms, []string{"A"}) {
		t.Errorf("matched = %v, want [A]", r.MatchedSymptoms)
	}
}

func TestEmptyRuleSetFallbacks(t *testing.T) {
	kb := catalog.EmptyKnowledgeBase()
	d := &catalog.Disease{ID: "VACIA"}
	kb.Register(d)
	e := NewEngine(kb, catalog.EmptySymptomRegistry())

	// required empty scores 1.0, common and optional fall back to 0.5.
	r := e.evaluateDisease(d, patient.NewSymptoms())
	approx(t, "fallback confidence", r.Confidence, 0.4*1.0+0.35*0.5+0.15*0.5)
}

func TestExcludingPenaltyIsPerSymptom(t *testing.T) {
	reg := catalog.EmptySymptomRegistry()
	for _, id := range []string{"A", "X", "Y"} {
		reg.Register(&catalog.Symptom{ID: id, Name: id, SeverityWeight: 1})
	}
	kb := catalog.EmptyKnowledgeBase()
	d := &catalog.Disease{
		ID:                "D",
		RequiredSymptoms:  []string{"A"},
		ExcludingSymptoms: []string{"X", "Y"},
	}
	kb.Register(d)
	e := NewEngine(kb, reg)

	ps := patient.NewSymptoms()
	ps.Add("A", patient.SeverityModerado, 0, "")
	ps.Add("X", patient.SeverityModerado, 0, "")
	ps.Add("Y", patient.SeverityModerado, 0, "")

	// 0.4 + 0.175 + 0.075 - 0.10*(2*0.15), then the severity multiplier
	// for a single Moderado match.
	r := e.evaluateDisease(d, ps)
	approx(t, "penalized confidence", r.Confidence, 0.62*0.95)
}

func TestSeverityMultiplier(t *testing.T) {
	ps := patient.NewSymptoms()
	ps.Add("A", patient.SeverityLeve, 0, "")
	ps.Add("B", patient.SeverityCritico, 0, "")

	approx(t, "no matches", severityMultiplier(ps, nil), 1.0)
	approx(t, "avg 1", severityMultiplier(ps, []string{"A"}), 0.8)
	approx(t, "avg 4", severityMultiplier(ps, []string{"B"}), 1.25)
	approx(t, "avg 2.5", severityMultiplier(ps, []string{"A", "B"}), 0.8+1.5*0.15)
}

func TestDurationMultiplier(t *testing.T) {
	ps := patient.NewSymptoms()
	ps.Add("A", patient.SeverityLeve, 1, "")
	ps.Add("B", patient.SeverityLeve, 7, "")
	ps.Add("C", patient.SeverityLeve, 10, "")
	ps.Add("D", patient.SeverityLeve, 100, "")
	ps.Add("E", patient.SeverityLeve, 0, "")

	approx(t, "no durations", durationMultiplier(ps, []string{"E"}), 1.0)
	approx(t, "avg 1", durationMultiplier(ps, []string{"A"}), 1.0)
	approx(t, "avg 7", durationMultiplier(ps, []string{"B"}), 1.12)
	approx(t, "avg 10", durationMultiplier(ps, []string{"C"}), 1.1-3*0.015)
	approx(t, "floored", durationMultiplier(ps, []string{"D"}), 0.5)
}

func TestFluAgainstFocusedCatalog(t *testing.T) {
	// With only the two viral respiratory rules loaded, a textbook flu
	// picture scores well above the moderate-confidence bar.
	kb := catalog.EmptyKnowledgeBase()
	full := catalog.NewKnowledgeBase()
	kb.Register(full.Get("GRIPE"))
	kb.Register(full.Get("RESFRIADO"))
	e := NewEngine(kb, catalog.NewSymptomRegistry())

	results := e.Diagnose(fluReport(), 5)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Disease.ID != "GRIPE" {
		t.Fatalf("top = %s, want GRIPE", results[0].Disease.ID)
	}
	if results[0].Confidence <= 0.6 {
		t.Errorf("confidence = %.3f, want > 0.6", results[0].Confidence)
	}
}

func TestFluAgainstFullCatalog(t *testing.T) {
	e := fullEngine()

	results := e.Diagnose(fluReport(), 5)
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Disease.ID != "GRIPE" {
		t.Fatalf("top = %s, want GRIPE", results[0].Disease.ID)
	}
	if results[1].Disease.ID != "MIGRANA" || results[2].Disease.ID != "SINUSITIS" {
		t.Errorf("runners-up = %s, %s; want MIGRANA, SINUSITIS",
			results[1].Disease.ID, results[2].Disease.ID)
	}
	if results[0].Confidence < 0.5 {
		t.Errorf("top confidence = %.3f, want >= 0.5", results[0].Confidence)
	}

	for i, r := range results {
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence[%d] = %.3f out of [0,1]", i, r.Confidence)
		}
		if i > 0 && results[i-1].Confidence < r.Confidence {
			t.Errorf("results not sorted at %d", i)
		}
	}

	// Aggregate severity 25.8 crosses the high-risk threshold.
	if results[0].RiskLevel != RiskAlto {
		t.Errorf("top risk = %s, want ALTO", results[0].RiskLevel)
	}
}

func TestGastritisPresentation(t *testing.T) {
	e := fullEngine()

	ps := patient.NewSymptoms()
	ps.Add("DOLOR_ABDOMINAL", patient.SeverityGrave, 2, "")
	ps.Add("ACIDEZ", patient.SeverityGrave, 2, "")
	ps.Add("NAUSEAS", patient.SeverityModerado, 2, "")
	ps.Add("PERDIDA_APETITO", patient.SeverityModerado, 2, "")
	ps.Add("HINCHAZON", patient.SeverityModerado, 2, "")

	results := e.Diagnose(ps, 5)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	top := results[0]
	if top.Disease.ID != "GASTRITIS" {
		t.Fatalf("top = %s, want GASTRITIS", top.Disease.ID)
	}
	if top.RiskLevel != RiskModerado {
		t.Errorf("risk = %s, want MODERADO", top.RiskLevel)
	}
}

func TestDiagnoseEmptyReport(t *testing.T) {
	if got := fullEngine().Diagnose(patient.NewSymptoms(), 5); len(got) != 0 {
		t.Fatalf("empty report produced %d results", len(got))
	}
}

func TestDiagnoseMaxResults(t *testing.T) {
	e := fullEngine()
	ps := fluReport()

	if got := e.Diagnose(ps, 2); len(got) != 2 {
		t.Errorf("maxResults 2 gave %d results", len(got))
	}
	if got := e.Diagnose(ps, 0); len(got) != 0 {
		t.Errorf("maxResults 0 gave %d results", len(got))
	}
	if got := e.Diagnose(ps, -1); len(got) != 0 {
		t.Errorf("maxResults -1 gave %d results", len(got))
	}
}

func TestDiagnoseDeterministic(t *testing.T) {
	e := fullEngine()
	ps := fluReport()

	a := e.Diagnose(ps, 5)
	b := e.Diagnose(ps, 5)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated Diagnose calls differ")
	}
}

func TestTiesKeepCatalogOrder(t *testing.T) {
	reg := catalog.EmptySymptomRegistry()
	reg.Register(&catalog.Symptom{ID: "A", Name: "A", SeverityWeight: 1})

	kb := catalog.EmptyKnowledgeBase()
	kb.Register(&catalog.Disease{ID: "PRIMERA", RequiredSymptoms: []string{"A"}})
	kb.Register(&catalog.Disease{ID: "SEGUNDA", RequiredSymptoms: []string{"A"}})
	e := NewEngine(kb, reg)

	ps := patient.NewSymptoms()
	ps.Add("A", patient.SeverityModerado, 2, "")

	results := e.Diagnose(ps, 5)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Disease.ID != "PRIMERA" || results[1].Disease.ID != "SEGUNDA" {
		t.Errorf("tie order = %s, %s; want PRIMERA, SEGUNDA",
			results[0].Disease.ID, results[1].Disease.ID)
	}
}

func TestNormalizeConfidences(t *testing.T) {
	results := []DiagnosisResult{{Confidence: 0.6}, {Confidence: 0.3}}
	normalizeConfidences(results)

	approx(t, "first", results[0].Confidence, 0.7*(0.6/0.9)+0.3*0.6)
	approx(t, "second", results[1].Confidence, 0.7*(0.3/0.9)+0.3*0.3)
	if results[0].Confidence <= results[1].Confidence {
		t.Error("normalization broke the ordering")
	}

	empty := []DiagnosisResult{}
	normalizeConfidences(empty) // must not panic
}

func TestRiskLevelPrecedence(t *testing.T) {
	e := fullEngine()

	light := patient.NewSymptoms()
	light.Add("FIEBRE", patient.SeverityLeve, 1, "")

	heavy := patient.NewSymptoms()
	heavy.Add("DOLOR_PECHO", patient.SeverityCritico, 1, "")   // 2.8*4
	heavy.Add("DIFICULTAD_RESPIRAR", patient.SeverityCritico, 1, "") // 2.5*4

	emergencia := &catalog.Disease{ID: "E", Urgency: catalog.UrgencyEmergencia}
	urgente := &catalog.Disease{ID: "U", Urgency: catalog.UrgencyConsultaUrgente}
	casa := &catalog.Disease{ID: "C", Urgency: catalog.UrgencyAutocuidado}

	if got := e.riskLevel(emergencia, 0.1, light); got != RiskCritico {
		t.Errorf("emergencia risk = %s, want CRÍTICO", got)
	}
	if got := e.riskLevel(urgente, 0.1, light); got != RiskAlto {
		t.Errorf("urgente risk = %s, want ALTO", got)
	}
	if got := e.riskLevel(casa, 0.1, heavy); got != RiskAlto {
		t.Errorf("heavy-report risk = %s, want ALTO", got)
	}
	if got := e.riskLevel(casa, 0.75, light); got != RiskModerado {
		t.Errorf("high-confidence risk = %s, want MODERADO", got)
	}
	if got := e.riskLevel(casa, 0.5, light); got != RiskBajo {
		t.Errorf("default risk = %s, want BAJO", got)
	}
}

func TestExplanationMentionsKeySymptoms(t *testing.T) {
	e := fullEngine()
	results := e.Diagnose(fluReport(), 1)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}

	exp := results[0].Explanation
	for _, want := range []string{"Presenta síntomas clave: Fiebre", "Síntomas comunes presentes"} {
		if !strings.Contains(exp, want) {
			t.Errorf("explanation %q missing %q", exp, want)
		}
	}
}
