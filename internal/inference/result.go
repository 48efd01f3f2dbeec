package inference

import "sintomed/internal/catalog"

// RiskLevel is the coarse urgency label attached to a diagnosis.
type RiskLevel string

const (
	RiskBajo     RiskLevel = "BAJO"
	RiskModerado RiskLevel = "MODERADO"
	RiskAlto     RiskLevel = "ALTO"
	RiskCritico  RiskLevel = "CRÍTICO"
)

// DiagnosisResult is one scored candidate. MatchedSymptoms is the union
// of required, common and optional matches in rule order;
// MissingKeySymptoms are the required symptoms the patient did not
// report. Results are created fresh per Diagnose call and never
// persisted by the engine.
type DiagnosisResult struct {
	Disease            *catalog.Disease `json:"disease"`
	Confidence         float64          `json:"confidence"`
	MatchedSymptoms    []string         `json:"matched_symptoms"`
	MissingKeySymptoms []string         `json:"missing_key_symptoms"`
	Explanation        string           `json:"explanation"`
	RiskLevel          RiskLevel        `json:"risk_level"`
}
