package inference

import (
	"fmt"
	"sort"
	"strings"

	"sintomed/internal/catalog"
	"sintomed/internal/patient"
)

// Scoring weights and thresholds. These are tuning constants, not derived
// at runtime.
const (
	weightRequired  = 0.40
	weightCommon    = 0.35
	weightOptional  = 0.15
	weightExcluding = 0.10

	// Each excluding symptom present adds this much raw penalty before
	// the weightExcluding factor. Not normalized by the excluding set
	// size.
	excludingPenaltyPerSymptom = 0.15

	minConfidenceThreshold  = 0.25
	highConfidenceThreshold = 0.70

	// Aggregate patient severity above this elevates risk to ALTO when
	// the disease urgency alone does not.
	severityScoreRiskThreshold = 20.0

	// Floor for the long-duration decay branch, which is otherwise
	// unbounded below. Tunable.
	durationMultiplierFloor = 0.5
)

// Engine evaluates every disease in the knowledge base against a patient
// report. It is a pure function of (catalogs, report): no I/O, no hidden
// state, safe for concurrent Diagnose calls as long as the catalogs are
// not mutated and each report belongs to one caller.
type Engine struct {
	kb  *catalog.KnowledgeBase
	reg *catalog.SymptomRegistry
}

func NewEngine(kb *catalog.KnowledgeBase, reg *catalog.SymptomRegistry) *Engine {
	return &Engine{kb: kb, reg: reg}
}

// Diagnose runs forward chaining: scores every disease, keeps candidates
// at or above the minimum confidence, sorts descending (stable over
// catalog order), applies the soft renormalization and returns at most
// maxResults entries. maxResults below zero behaves like zero.
func (e *Engine) Diagnose(ps *patient.Symptoms, maxResults int) []DiagnosisResult {
	if maxResults < 0 {
		maxResults = 0
	}

	var results []DiagnosisResult
	for _, disease := range e.kb.All() {
		r := e.evaluateDisease(disease, ps)
		if r.Confidence >= minConfidenceThreshold {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	normalizeConfidences(results)

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func (e *Engine) evaluateDisease(d *catalog.Disease, ps *patient.Symptoms) DiagnosisResult {
	requiredMatch := present(d.RequiredSymptoms, ps)

	requiredScore := 1.0
	if len(d.RequiredSymptoms) > 0 {
		requiredScore = float64(len(requiredMatch)) / float64(len(d.RequiredSymptoms))
	}

	// Without the hallmark symptoms there is no diagnosis; short-circuit
	// before any weighting or multiplier.
	if requiredScore < 0.5 {
		return DiagnosisResult{
			Disease:            d,
			Confidence:         requiredScore * 0.3,
			MatchedSymptoms:    requiredMatch,
			MissingKeySymptoms: absent(d.RequiredSymptoms, ps),
			Explanation:        "No cumple con síntomas requeridos principales",
			RiskLevel:          RiskBajo,
		}
	}

	commonMatch := present(d.CommonSymptoms, ps)
	commonScore := 0.5
	if len(d.CommonSymptoms) > 0 {
		commonScore = float64(len(commonMatch)) / float64(len(d.CommonSymptoms))
	}

	optionalMatch := present(d.OptionalSymptoms, ps)
	optionalScore := 0.5
	if len(d.OptionalSymptoms) > 0 {
		optionalScore = float64(len(optionalMatch)) / float64(len(d.OptionalSymptoms))
	}

	excludingMatch := present(d.ExcludingSymptoms, ps)
	excludingPenalty := float64(len(excludingMatch)) * excludingPenaltyPerSymptom

	confidence := weightRequired*requiredScore +
		weightCommon*commonScore +
		weightOptional*optionalScore -
		weightExcluding*excludingPenalty

	keyMatches := append(append([]string{}, requiredMatch...), commonMatch...)
	confidence *= severityMultiplier(ps, keyMatches)
	confidence *= durationMultiplier(ps, keyMatches)

	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	matched := append(append(append([]string{}, requiredMatch...), commonMatch...), optionalMatch...)

	return DiagnosisResult{
		Disease:            d,
		Confidence:         confidence,
		MatchedSymptoms:    matched,
		MissingKeySymptoms: absent(d.RequiredSymptoms, ps),
		Explanation:        e.explain(requiredMatch, commonMatch, excludingMatch, confidence),
		RiskLevel:          e.riskLevel(d, confidence, ps),
	}
}

// severityMultiplier scales confidence by how intensely the matched
// required+common symptoms are reported. Average severity of 2
// (Moderado) maps to roughly 1.0; the result is clamped to [0.7, 1.3].
func severityMultiplier(ps *patient.Symptoms, matched []string) float64 {
	total, count := 0, 0
	for _, id := range matched {
		if sev, ok := ps.Severity(id); ok {
			total += int(sev)
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	avg := float64(total) / float64(count)
	m := 0.8 + (avg-1)*0.15
	if m < 0.7 {
		return 0.7
	}
	if m > 1.3 {
		return 1.3
	}
	return m
}

// durationMultiplier scales confidence by how long the matched symptoms
// have lasted. Under a day is too fresh to be confident; the 1-7 day
// acute window gets a mild boost; beyond a week confidence decays, down
// to a fixed floor.
func durationMultiplier(ps *patient.Symptoms, matched []string) float64 {
	total, count := 0, 0
	for _, id := range matched {
		if d := ps.Duration(id); d > 0 {
			total += d
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	avg := float64(total) / float64(count)
	switch {
	case avg < 1:
		return 0.85
	case avg <= 7:
		return 1.0 + (avg-1)*0.02
	default:
		m := 1.1 - (avg-7)*0.015
		if m < durationMultiplierFloor {
			return durationMultiplierFloor
		}
		return m
	}
}

// riskLevel derives the urgency label. Disease urgency dominates;
// aggregate patient severity and confidence only apply as fallbacks.
// This precedence order is a compatibility contract.
func (e *Engine) riskLevel(d *catalog.Disease, confidence float64, ps *patient.Symptoms) RiskLevel {
	severityScore := ps.SeverityScore(e.reg)

	switch {
	case d.Urgency == catalog.UrgencyEmergencia:
		return RiskCritico
	case d.Urgency == catalog.UrgencyConsultaUrgente:
		return RiskAlto
	case severityScore > severityScoreRiskThreshold:
		return RiskAlto
	case confidence > highConfidenceThreshold:
		return RiskModerado
	default:
		return RiskBajo
	}
}

func (e *Engine) explain(requiredMatch, commonMatch, excludingMatch []string, confidence float64) string {
	var parts []string

	if names := e.symptomNames(requiredMatch); len(names) > 0 {
		parts = append(parts, "Presenta síntomas clave: "+strings.Join(names, ", "))
	}
	if names := e.symptomNames(commonMatch); len(names) > 0 {
		parts = append(parts, "Síntomas comunes presentes: "+strings.Join(names, ", "))
	}
	if names := e.symptomNames(excludingMatch); len(names) > 0 {
		parts = append(parts, "Presenta síntomas atípicos: "+strings.Join(names, ", "))
	}

	switch {
	case confidence >= 0.8:
		parts = append(parts, "Alta probabilidad de diagnóstico")
	case confidence >= 0.6:
		parts = append(parts, "Probabilidad moderada-alta")
	case confidence >= 0.4:
		parts = append(parts, "Probabilidad moderada")
	default:
		parts = append(parts, "Probabilidad baja, considerar otras opciones")
	}

	return strings.Join(parts, ". ") + "."
}

// symptomNames resolves ids to display names, silently dropping ids the
// registry does not know.
func (e *Engine) symptomNames(ids []string) []string {
	var names []string
	for _, id := range ids {
		if s := e.reg.Get(id); s != nil {
			names = append(names, s.Name)
		}
	}
	return names
}

// normalizeConfidences blends each surviving confidence with its share of
// the total: 70% relative proportion, 30% original magnitude. Every entry
// is scaled by the same positive factor, so the descending order is
// preserved. The blended values do not sum to 1; this is calibration
// across candidates, not a probability distribution.
func normalizeConfidences(results []DiagnosisResult) {
	var total float64
	for _, r := range results {
		total += r.Confidence
	}
	if total <= 0 {
		return
	}
	for i := range results {
		original := results[i].Confidence
		normalized := original / total
		results[i].Confidence = 0.7*normalized + 0.3*original
	}
}

// present filters rule ids down to those the patient reports, keeping
// rule order. Unknown ids simply never match.
func present(ruleIDs []string, ps *patient.Symptoms) []string {
	var out []string
	for _, id := range ruleIDs {
		if ps.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// absent filters rule ids down to those the patient does not report.
func absent(ruleIDs []string, ps *patient.Symptoms) []string {
	var out []string
	for _, id := range ruleIDs {
		if !ps.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// confidencePercent formats a confidence for display.
func confidencePercent(c float64) string {
	return fmt.Sprintf("%.1f%%", c*100)
}
