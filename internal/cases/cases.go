// Package cases carries a fixed battery of simulated consultations with
// known diagnoses. It doubles as the acceptance harness for the scoring
// algorithm and as demo material for the presentation layer.
package cases

import (
	"sintomed/internal/inference"
	"sintomed/internal/patient"
)

// Case is one simulated consultation with its expected diagnosis.
type Case struct {
	ID                string
	Name              string
	Age               int
	Gender            string
	Symptoms          *patient.Symptoms
	ExpectedDiagnosis string
	Description       string
	Context           string
}

type reported struct {
	id       string
	severity patient.SeverityLevel
	days     int
	note     string
}

func report(entries ...reported) *patient.Symptoms {
	ps := patient.NewSymptoms()
	for _, e := range entries {
		ps.Add(e.id, e.severity, e.days, e.note)
	}
	return ps
}

// Battery returns the full case collection. Each call builds fresh
// reports so callers may mutate them freely.
func Battery() []Case {
	return []Case{
		{
			ID: "CASE_001", Name: "María González", Age: 35, Gender: "Femenino",
			ExpectedDiagnosis: "GRIPE",
			Description:       "Inicio súbito de fiebre alta, dolores corporales y fatiga extrema hace 3 días",
			Context:           "Temporada de influenza, varios casos en su lugar de trabajo",
			Symptoms: report(
				reported{"FIEBRE", patient.SeverityGrave, 3, "39.2°C"},
				reported{"FATIGA", patient.SeverityGrave, 3, ""},
				reported{"DOLOR_CABEZA", patient.SeverityModerado, 3, ""},
				reported{"DOLOR_MUSCULAR", patient.SeverityGrave, 3, ""},
				reported{"TOS_SECA", patient.SeverityModerado, 2, ""},
				reported{"ESCALOFRIOS", patient.SeverityGrave, 3, ""},
				reported{"SUDORACION", patient.SeverityModerado, 2, ""},
			),
		},
		{
			ID: "CASE_002", Name: "Carlos Ramírez", Age: 28, Gender: "Masculino",
			ExpectedDiagnosis: "RESFRIADO",
			Description:       "Inicio gradual de congestión nasal y estornudos, sin fiebre",
			Context:           "Cambio de clima, exposición a aire acondicionado",
			Symptoms: report(
				reported{"CONGESTION_NASAL", patient.SeverityModerado, 4, ""},
				reported{"ESTORNUDOS", patient.SeverityModerado, 4, ""},
				reported{"DOLOR_GARGANTA", patient.SeverityLeve, 3, ""},
				reported{"TOS_SECA", patient.SeverityLeve, 2, ""},
				reported{"DOLOR_CABEZA", patient.SeverityLeve, 3, ""},
			),
		},
		{
			ID: "CASE_003", Name: "Ana Torres", Age: 42, Gender: "Femenino",
			ExpectedDiagnosis: "GASTRITIS",
			Description:       "Dolor intenso en la boca del estómago, acidez severa después de comidas",
			Context:           "Estrés laboral elevado, consumo de café y alimentos irritantes",
			Symptoms: report(
				reported{"DOLOR_ABDOMINAL", patient.SeverityGrave, 2, "Dolor en epigastrio"},
				reported{"ACIDEZ", patient.SeverityGrave, 2, ""},
				reported{"NAUSEAS", patient.SeverityModerado, 2, ""},
				reported{"PERDIDA_APETITO", patient.SeverityModerado, 2, ""},
				reported{"HINCHAZON", patient.SeverityModerado, 2, ""},
			),
		},
		{
			ID: "CASE_004", Name: "Roberto Mendoza", Age: 31, Gender: "Masculino",
			ExpectedDiagnosis: "GASTROENTERITIS",
			Description:       "Diarrea aguda con vómitos ocasionales, iniciado ayer",
			Context:           "Posible intoxicación alimentaria, comida en restaurante",
			Symptoms: report(
				reported{"DIARREA", patient.SeverityGrave, 2, "5-6 evacuaciones al día"},
				reported{"VOMITO", patient.SeverityModerado, 1, ""},
				reported{"NAUSEAS", patient.SeverityGrave, 2, ""},
				reported{"DOLOR_ABDOMINAL", patient.SeverityModerado, 2, ""},
				reported{"FIEBRE", patient.SeverityLeve, 2, "37.8°C"},
				reported{"FATIGA", patient.SeverityModerado, 2, ""},
			),
		},
		{
			ID: "CASE_005", Name: "Laura Sánchez", Age: 45, Gender: "Femenino",
			ExpectedDiagnosis: "BRONQUITIS",
			Description:       "Tos persistente con producción de flema, dificultad para respirar profundamente",
			Context:           "Fumadora, después de resfriado prolongado",
			Symptoms: report(
				reported{"TOS_PRODUCTIVA", patient.SeverityGrave, 5, "Flema amarillenta"},
				reported{"DIFICULTAD_RESPIRAR", patient.SeverityModerado, 4, ""},
				reported{"DOLOR_PECHO", patient.SeverityModerado, 4, "Al toser"},
				reported{"FATIGA", patient.SeverityModerado, 5, ""},
				reported{"SIBILANCIAS", patient.SeverityLeve, 3, ""},
				reported{"FIEBRE", patient.SeverityLeve, 3, "37.5°C"},
			),
		},
		{
			ID: "CASE_006", Name: "Diego Vargas", Age: 25, Gender: "Masculino",
			ExpectedDiagnosis: "FARINGITIS",
			Description:       "Dolor intenso de garganta, dificultad para tragar, fiebre moderada",
			Context:           "Contacto con personas con infección de garganta",
			Symptoms: report(
				reported{"DOLOR_GARGANTA", patient.SeverityGrave, 2, "Dolor al tragar"},
				reported{"FIEBRE", patient.SeverityModerado, 2, "38.5°C"},
				reported{"DOLOR_CABEZA", patient.SeverityModerado, 2, ""},
				reported{"FATIGA", patient.SeverityModerado, 2, ""},
				reported{"DOLOR_MUSCULAR", patient.SeverityLeve, 2, ""},
			),
		},
		{
			ID: "CASE_007", Name: "Patricia Ruiz", Age: 38, Gender: "Femenino",
			ExpectedDiagnosis: "SINUSITIS",
			Description:       "Congestión nasal severa con presión facial, dolor de cabeza persistente",
			Context:           "Después de resfriado que no mejoró, alergias estacionales",
			Symptoms: report(
				reported{"CONGESTION_NASAL", patient.SeverityGrave, 7, ""},
				reported{"DOLOR_CABEZA", patient.SeverityGrave, 6, "Presión facial"},
				reported{"TOS_PRODUCTIVA", patient.SeverityModerado, 5, ""},
				reported{"FATIGA", patient.SeverityModerado, 6, ""},
				reported{"FIEBRE", patient.SeverityLeve, 4, "37.6°C"},
			),
		},
		{
			ID: "CASE_008", Name: "Miguel Ángel Flores", Age: 40, Gender: "Masculino",
			ExpectedDiagnosis: "MIGRANA",
			Description:       "Dolor de cabeza intenso en un lado, sensibilidad a luz y sonido, náuseas",
			Context:           "Historial de migrañas, desencadenado por estrés y falta de sueño",
			Symptoms: report(
				reported{"DOLOR_CABEZA", patient.SeverityCritico, 1, "Pulsátil, unilateral"},
				reported{"NAUSEAS", patient.SeverityGrave, 1, ""},
				reported{"VISION_BORROSA", patient.SeverityModerado, 1, ""},
				reported{"MAREOS", patient.SeverityModerado, 1, ""},
				reported{"FATIGA", patient.SeverityGrave, 1, ""},
			),
		},
		{
			ID: "CASE_009", Name: "Carmen López", Age: 32, Gender: "Femenino",
			ExpectedDiagnosis: "ITU",
			Description:       "Ardor al orinar, necesidad frecuente de ir al baño, molestia abdominal baja",
			Context:           "Deshidratación reciente, retención de orina",
			Symptoms: report(
				reported{"DOLOR_ORINAR", patient.SeverityGrave, 3, "Ardor intenso"},
				reported{"FRECUENCIA_URINARIA", patient.SeverityGrave, 3, ""},
				reported{"DOLOR_ABDOMINAL", patient.SeverityModerado, 2, "Parte baja"},
				reported{"FIEBRE", patient.SeverityLeve, 2, "37.9°C"},
			),
		},
		{
			ID: "CASE_010", Name: "Javier Morales", Age: 29, Gender: "Masculino",
			ExpectedDiagnosis: "CONJUNTIVITIS",
			Description:       "Ojos rojos e irritados, picazón constante, lagrimeo",
			Context:           "Contacto con persona con conjuntivitis, uso prolongado de pantallas",
			Symptoms: report(
				reported{"OJOS_ROJOS", patient.SeverityModerado, 2, ""},
				reported{"PICAZON_OJOS", patient.SeverityModerado, 2, ""},
				reported{"LAGRIMEO", patient.SeverityModerado, 2, ""},
				reported{"VISION_BORROSA", patient.SeverityLeve, 1, ""},
			),
		},
		{
			ID: "CASE_011", Name: "Elena Castro", Age: 52, Gender: "Femenino",
			ExpectedDiagnosis: "BRONQUITIS",
			Description:       "Cuadro respiratorio complicado, tos productiva severa con fiebre prolongada",
			Context:           "Paciente con EPOC leve, complicación de gripe inicial",
			Symptoms: report(
				reported{"FIEBRE", patient.SeverityGrave, 5, ""},
				reported{"TOS_PRODUCTIVA", patient.SeverityGrave, 6, ""},
				reported{"DIFICULTAD_RESPIRAR", patient.SeverityModerado, 5, ""},
				reported{"DOLOR_MUSCULAR", patient.SeverityModerado, 5, ""},
				reported{"FATIGA", patient.SeverityGrave, 6, ""},
				reported{"DOLOR_PECHO", patient.SeverityModerado, 4, ""},
				reported{"ESCALOFRIOS", patient.SeverityModerado, 5, ""},
			),
		},
		{
			ID: "CASE_012", Name: "Pedro Jiménez", Age: 26, Gender: "Masculino",
			ExpectedDiagnosis: "RESFRIADO",
			Description:       "Síntomas leves e inespecíficos, posible inicio de infección viral",
			Context:           "Falta de sueño, estrés por trabajo",
			Symptoms: report(
				reported{"FATIGA", patient.SeverityLeve, 3, ""},
				reported{"DOLOR_CABEZA", patient.SeverityLeve, 2, ""},
				reported{"MALESTAR_GENERAL", patient.SeverityLeve, 3, ""},
			),
		},
	}
}

// CaseStatus is the outcome of one case through the engine.
type CaseStatus string

const (
	StatusCorrect   CaseStatus = "CORRECTO"
	StatusPartial   CaseStatus = "PARCIAL"
	StatusIncorrect CaseStatus = "INCORRECTO"
	StatusNoResult  CaseStatus = "SIN_RESULTADO"
)

// CaseResult records one case outcome in a validation run.
type CaseResult struct {
	CaseID     string     `json:"case_id"`
	Expected   string     `json:"expected"`
	Predicted  string     `json:"predicted"`
	Confidence float64    `json:"confidence"`
	Status     CaseStatus `json:"status"`
}

// ValidationReport summarizes a full battery run. Accuracy is the
// percentage of exact top-1 matches.
type ValidationReport struct {
	TotalCases       int          `json:"total_cases"`
	CorrectDiagnoses int          `json:"correct_diagnoses"`
	PartialMatches   int          `json:"partial_matches"`
	Incorrect        int          `json:"incorrect"`
	Accuracy         float64      `json:"accuracy"`
	CaseResults      []CaseResult `json:"case_results"`
}

// Validate feeds every case through the engine and tallies exact top-1
// matches, top-3 partial matches and misses.
func Validate(engine *inference.Engine) ValidationReport {
	summary := ValidationReport{}

	for _, c := range Battery() {
		summary.TotalCases++

		diagnoses := engine.Diagnose(c.Symptoms, 3)
		if len(diagnoses) == 0 {
			summary.Incorrect++
			summary.CaseResults = append(summary.CaseResults, CaseResult{
				CaseID: c.ID, Expected: c.ExpectedDiagnosis, Status: StatusNoResult,
			})
			continue
		}

		top := diagnoses[0]
		status := StatusIncorrect
		switch {
		case top.Disease.ID == c.ExpectedDiagnosis:
			summary.CorrectDiagnoses++
			status = StatusCorrect
		default:
			for _, d := range diagnoses {
				if d.Disease.ID == c.ExpectedDiagnosis {
					status = StatusPartial
					break
				}
			}
			if status == StatusPartial {
				summary.PartialMatches++
			} else {
				summary.Incorrect++
			}
		}

		summary.CaseResults = append(summary.CaseResults, CaseResult{
			CaseID:     c.ID,
			Expected:   c.ExpectedDiagnosis,
			Predicted:  top.Disease.ID,
			Confidence: top.Confidence,
			Status:     status,
		})
	}

	if summary.TotalCases > 0 {
		summary.Accuracy = float64(summary.CorrectDiagnoses) / float64(summary.TotalCases) * 100
	}
	return summary
}
