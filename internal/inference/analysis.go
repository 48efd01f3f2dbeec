package inference

import (
	"fmt"

	"sintomed/internal/patient"
)

// Days beyond which a reported symptom counts as chronic.
const chronicDurationDays = 14

// suggestedTests maps a disease id to follow-up clinical tests for the
// top-ranked diagnosis.
var suggestedTests = map[string][]string{
	"GRIPE":      {"Test rápido de influenza", "Evaluación de saturación de oxígeno"},
	"BRONQUITIS": {"Radiografía de tórax", "Prueba de función pulmonar"},
	"GASTRITIS":  {"Endoscopia", "Prueba de H. pylori", "Análisis de sangre"},
	"ITU":        {"Examen general de orina", "Urocultivo"},
	"FARINGITIS": {"Cultivo de garganta", "Test rápido de estreptococo"},
	"MIGRANA":    {"Examen neurológico", "Diario de migrañas"},
}

// SuggestAdditionalTests proposes follow-up evaluations for a ranked
// result list. An empty list or a low-confidence top result steers the
// patient to a doctor.
func (e *Engine) SuggestAdditionalTests(results []DiagnosisResult) []string {
	if len(results) == 0 {
		return []string{"Consultar con médico para evaluación completa"}
	}

	top := results[0]
	var suggestions []string
	suggestions = append(suggestions, suggestedTests[top.Disease.ID]...)

	if top.Confidence < 0.5 {
		suggestions = append(suggestions, "Consulta médica para diagnóstico preciso")
	}

	if len(suggestions) == 0 {
		return []string{"Seguimiento con médico general"}
	}
	return suggestions
}

// PatternAnalysis aggregates the report without consulting the disease
// catalog.
type PatternAnalysis struct {
	DominantCategory     string         `json:"dominant_category"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	AverageSeverity      float64        `json:"average_severity"`
	ChronicSymptoms      []string       `json:"chronic_symptoms"`
	TotalSymptoms        int            `json:"total_symptoms"`
}

// AnalyzeSymptomPatterns counts reported symptoms per category, averages
// the reported severity over all reported symptoms and flags symptoms
// lasting more than two weeks as chronic. Symptoms unknown to the
// registry count toward the total but not toward any category.
func (e *Engine) AnalyzeSymptomPatterns(ps *patient.Symptoms) PatternAnalysis {
	categories := make(map[string]int)
	var totalSeverity int
	var chronic []string

	for _, id := range ps.IDs() {
		symptom := e.reg.Get(id)
		if symptom == nil {
			continue
		}
		categories[string(symptom.Category)]++

		if sev, ok := ps.Severity(id); ok {
			totalSeverity += int(sev)
		}
		if ps.Duration(id) > chronicDurationDays {
			chronic = append(chronic, symptom.Name)
		}
	}

	var avgSeverity float64
	if ps.Count() > 0 {
		avgSeverity = float64(totalSeverity) / float64(ps.Count())
	}

	return PatternAnalysis{
		DominantCategory:     dominantCategory(categories),
		CategoryDistribution: categories,
		AverageSeverity:      avgSeverity,
		ChronicSymptoms:      chronic,
		TotalSymptoms:        ps.Count(),
	}
}

// dominantCategory picks the most frequent category; ties break on the
// lexicographically smaller name so the answer is deterministic.
func dominantCategory(categories map[string]int) string {
	best, bestCount := "N/A", 0
	for name, count := range categories {
		if count > bestCount || (count == bestCount && bestCount > 0 && name < best) {
			best, bestCount = name, count
		}
	}
	return best
}

// DifferentialDiagnosis lists the plausible alternatives to consider, as
// display strings.
func (e *Engine) DifferentialDiagnosis(ps *patient.Symptoms) []string {
	results := e.Diagnose(ps, 10)

	var differential []string
	for _, r := range results {
		if r.Confidence >= 0.3 {
			differential = append(differential,
				fmt.Sprintf("%s (%s confianza)", r.Disease.Name, confidencePercent(r.Confidence)))
		}
	}

	if len(differential) == 0 {
		return []string{"No se encontraron diagnósticos probables"}
	}
	return differential
}
