package inference

import (
	"fmt"
	"strings"

	"sintomed/internal/patient"
)

// BackwardChain checks whether the report is compatible with one specific
// disease, independent of the ranked scoring pass. It returns no
// confidence number: just a verdict and an explanation. An unknown
// disease id is the only structured failure the engine produces.
func (e *Engine) BackwardChain(diseaseID string, ps *patient.Symptoms) (bool, string) {
	disease := e.kb.Get(diseaseID)
	if disease == nil {
		return false, "Enfermedad no encontrada en la base de conocimiento"
	}

	if missing := absent(disease.RequiredSymptoms, ps); len(missing) > 0 {
		names := e.symptomNames(missing)
		return false, fmt.Sprintf("Faltan síntomas requeridos: %s. No es posible este diagnóstico.",
			strings.Join(names, ", "))
	}

	if excluding := present(disease.ExcludingSymptoms, ps); len(excluding) > 0 {
		names := e.symptomNames(excluding)
		return false, fmt.Sprintf("Presenta síntomas que excluyen este diagnóstico: %s",
			strings.Join(names, ", "))
	}

	commonMatch := present(disease.CommonSymptoms, ps)
	var commonPercentage float64
	if len(disease.CommonSymptoms) > 0 {
		commonPercentage = float64(len(commonMatch)) / float64(len(disease.CommonSymptoms)) * 100
	}

	return true, fmt.Sprintf("Es posible. Cumple con todos los síntomas requeridos. "+
		"Presenta %.0f%% de síntomas comunes. Se recomienda evaluación médica para confirmar.",
		commonPercentage)
}
