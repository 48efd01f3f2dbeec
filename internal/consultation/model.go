package consultation

import (
	"time"

	"github.com/google/uuid"

	"sintomed/internal/inference"
)

// ReportedSymptom is the persisted form of one patient symptom entry.
type ReportedSymptom struct {
	SymptomID    string `json:"symptom_id"`
	Severity     int    `json:"severity"`
	DurationDays int    `json:"duration_days"`
	Note         string `json:"note,omitempty"`
}

// Consultation is the aggregate root: one patient session with its
// reported symptoms and, once Diagnose has run, the engine output.
type Consultation struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PatientName string    `json:"patient_name" db:"patient_name"`
	Age         int       `json:"age" db:"age"`
	Gender      string    `json:"gender" db:"gender"`

	Symptoms []ReportedSymptom `json:"symptoms" db:"symptoms"`

	// Engine output, empty until the first Diagnose call.
	Diagnoses      []inference.DiagnosisResult `json:"diagnoses" db:"diagnoses"`
	Differential   []string                    `json:"differential" db:"differential"`
	SuggestedTests []string                    `json:"suggested_tests" db:"suggested_tests"`
	TopDiagnosis   string                      `json:"top_diagnosis" db:"top_diagnosis"`
	SeverityScore  float64                     `json:"severity_score" db:"severity_score"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Stats summarizes the stored consultation history.
type Stats struct {
	TotalConsultations int            `json:"total_consultations"`
	ByTopDiagnosis     map[string]int `json:"by_top_diagnosis"`
	AverageConfidence  float64        `json:"average_confidence"`
}
