package inference

import (
	"reflect"
	"strings"
	"testing"

	"sintomed/internal/catalog"
	"sintomed/internal/patient"
)

func TestSuggestAdditionalTests(t *testing.T) {
	e := fullEngine()
	gripe := e.kb.Get("GRIPE")
	rara := &catalog.Disease{ID: "RARA", Name: "Rara"}

	cases := []struct {
		name    string
		results []DiagnosisResult
		want    []string
	}{
		{
			name: "sin resultados",
			want: []string{"Consultar con médico para evaluación completa"},
		},
		{
			name:    "enfermedad conocida con confianza alta",
			results: []DiagnosisResult{{Disease: gripe, Confidence: 0.8}},
			want:    []string{"Test rápido de influenza", "Evaluación de saturación de oxígeno"},
		},
		{
			name:    "enfermedad conocida con confianza baja",
			results: []DiagnosisResult{{Disease: gripe, Confidence: 0.3}},
			want: []string{"Test rápido de influenza", "Evaluación de saturación de oxígeno",
				"Consulta médica para diagnóstico preciso"},
		},
		{
			name:    "enfermedad sin pruebas y confianza baja",
			results: []DiagnosisResult{{Disease: rara, Confidence: 0.3}},
			want:    []string{"Consulta médica para diagnóstico preciso"},
		},
		{
			name:    "enfermedad sin pruebas y confianza alta",
			results: []DiagnosisResult{{Disease: rara, Confidence: 0.6}},
			want:    []string{"Seguimiento con médico general"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.SuggestAdditionalTests(tc.results)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAnalyzeSymptomPatterns(t *testing.T) {
	e := fullEngine()

	ps := patient.NewSymptoms()
	ps.Add("FIEBRE", patient.SeverityGrave, 20, "")
	ps.Add("TOS_SECA", patient.SeverityModerado, 3, "")
	ps.Add("DESCONOCIDO", patient.SeverityLeve, 2, "")

	got := e.AnalyzeSymptomPatterns(ps)

	if got.TotalSymptoms != 3 {
		t.Errorf("TotalSymptoms = %d, want 3", got.TotalSymptoms)
	}
	wantDist := map[string]int{"General": 1, "Respiratorio": 1}
	if !reflect.DeepEqual(got.CategoryDistribution, wantDist) {
		t.Errorf("distribution = %v, want %v", got.CategoryDistribution, wantDist)
	}
	// Tie between General and Respiratorio resolves alphabetically.
	if got.DominantCategory != "General" {
		t.Errorf("dominant = %s, want General", got.DominantCategory)
	}
	// Unknown ids count toward the denominator but not the sum.
	if want := 5.0 / 3.0; got.AverageSeverity < want-1e-9 || got.AverageSeverity > want+1e-9 {
		t.Errorf("average severity = %g, want %g", got.AverageSeverity, want)
	}
	if !reflect.DeepEqual(got.ChronicSymptoms, []string{"Fiebre"}) {
		t.Errorf("chronic = %v, want [Fiebre]", got.ChronicSymptoms)
	}
}

func TestAnalyzeSymptomPatternsEmpty(t *testing.T) {
	got := fullEngine().AnalyzeSymptomPatterns(patient.NewSymptoms())

	if got.DominantCategory != "N/A" {
		t.Errorf("dominant = %s, want N/A", got.DominantCategory)
	}
	if got.AverageSeverity != 0 || got.TotalSymptoms != 0 {
		t.Errorf("empty report produced %+v", got)
	}
}

func TestChronicBoundaryIsExclusive(t *testing.T) {
	e := fullEngine()

	ps := patient.NewSymptoms()
	ps.Add("FIEBRE", patient.SeverityLeve, 14, "")

	if got := e.AnalyzeSymptomPatterns(ps); len(got.ChronicSymptoms) != 0 {
		t.Errorf("14-day symptom flagged as chronic: %v", got.ChronicSymptoms)
	}

	ps.Add("FIEBRE", patient.SeverityLeve, 15, "")
	if got := e.AnalyzeSymptomPatterns(ps); len(got.ChronicSymptoms) != 1 {
		t.Errorf("15-day symptom not flagged as chronic")
	}
}

func TestDifferentialDiagnosis(t *testing.T) {
	e := fullEngine()

	if got := e.DifferentialDiagnosis(patient.NewSymptoms()); !reflect.DeepEqual(got,
		[]string{"No se encontraron diagnósticos probables"}) {
		t.Errorf("empty report differential = %v", got)
	}

	ps := patient.NewSymptoms()
	ps.Add("DOLOR_ABDOMINAL", patient.SeverityGrave, 2, "")
	ps.Add("ACIDEZ", patient.SeverityGrave, 2, "")
	ps.Add("NAUSEAS", patient.SeverityModerado, 2, "")
	ps.Add("PERDIDA_APETITO", patient.SeverityModerado, 2, "")
	ps.Add("HINCHAZON", patient.SeverityModerado, 2, "")

	got := e.DifferentialDiagnosis(ps)
	if len(got) != 1 {
		t.Fatalf("differential = %v, want a single entry", got)
	}
	if !strings.HasPrefix(got[0], "Gastritis Aguda (") || !strings.HasSuffix(got[0], "% confianza)") {
		t.Errorf("differential entry = %q", got[0])
	}
}
