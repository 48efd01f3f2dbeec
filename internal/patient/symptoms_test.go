package patient

import (
	"math"
	"sort"
	"testing"

	"sintomed/internal/catalog"
)

func TestAddReportsOverwrite(t *testing.T) {
	ps := NewSymptoms()

	if existed := ps.Add("FIEBRE", SeverityLeve, 1, ""); existed {
		t.Fatal("first Add reported an existing entry")
	}
	if existed := ps.Add("FIEBRE", SeverityGrave, 3, "39°C"); !existed {
		t.Fatal("second Add did not report the existing entry")
	}

	sev, ok := ps.Severity("FIEBRE")
	if !ok || sev != SeverityGrave {
		t.Fatalf("Severity = %v, %v; want Grave, true", sev, ok)
	}
	if ps.Duration("FIEBRE") != 3 {
		t.Fatalf("Duration = %d, want 3", ps.Duration("FIEBRE"))
	}
	if ps.Note("FIEBRE") != "39°C" {
		t.Fatalf("Note = %q, want 39°C", ps.Note("FIEBRE"))
	}
	if ps.Count() != 1 {
		t.Fatalf("Count = %d, want 1", ps.Count())
	}
}

func TestRemoveAndClear(t *testing.T) {
	ps := NewSymptoms()
	ps.Add("FIEBRE", SeverityLeve, 1, "")
	ps.Add("TOS_SECA", SeverityLeve, 1, "")

	if !ps.Remove("FIEBRE") {
		t.Fatal("Remove of present symptom returned false")
	}
	if ps.Remove("FIEBRE") {
		t.Fatal("Remove of absent symptom returned true")
	}
	if ps.Has("FIEBRE") {
		t.Fatal("removed symptom still present")
	}

	ps.Clear()
	if ps.Count() != 0 {
		t.Fatalf("Count after Clear = %d, want 0", ps.Count())
	}
}

func TestDurationAbsentSymptom(t *testing.T) {
	ps := NewSymptoms()
	if d := ps.Duration("NADA"); d != 0 {
		t.Fatalf("Duration of absent symptom = %d, want 0", d)
	}
}

func TestIDsSorted(t *testing.T) {
	ps := NewSymptoms()
	ps.Add("TOS_SECA", SeverityLeve, 1, "")
	ps.Add("FIEBRE", SeverityLeve, 1, "")
	ps.Add("ACIDEZ", SeverityLeve, 1, "")

	ids := ps.IDs()
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("IDs not sorted: %v", ids)
	}
	if len(ids) != 3 {
		t.Fatalf("len(IDs) = %d, want 3", len(ids))
	}
}

func TestSeverityScore(t *testing.T) {
	reg := catalog.EmptySymptomRegistry()
	reg.Register(&catalog.Symptom{ID: "FIEBRE", Name: "Fiebre", SeverityWeight: 2.0})
	reg.Register(&catalog.Symptom{ID: "FATIGA", Name: "Fatiga", SeverityWeight: 1.3})

	ps := NewSymptoms()
	ps.Add("FIEBRE", SeverityGrave, 3, "")
	ps.Add("FATIGA", SeverityModerado, 3, "")
	ps.Add("DESCONOCIDO", SeverityCritico, 3, "")

	// 2.0*3 + 1.3*2; the unknown id contributes nothing.
	want := 8.6
	if got := ps.SeverityScore(reg); math.Abs(got-want) > 1e-9 {
		t.Fatalf("SeverityScore = %g, want %g", got, want)
	}
}

func TestSeverityLevelString(t *testing.T) {
	for level, want := range map[SeverityLevel]string{
		SeverityLeve:     "Leve",
		SeverityModerado: "Moderado",
		SeverityGrave:    "Grave",
		SeverityCritico:  "Crítico",
		SeverityLevel(9): "Desconocido",
	} {
		if got := level.String(); got != want {
			t.Errorf("SeverityLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
