package catalog

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// ExportDiseasesJSON writes the disease catalog as an id-keyed JSON
// object, mirroring the external consumer format.
func ExportDiseasesJSON(w io.Writer, kb *KnowledgeBase) error {
	data := make(map[string]*Disease, kb.Len())
	for _, d := range kb.All() {
		data[d.ID] = d
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportSymptomsCSV writes the symptom table with one row per symptom.
func ExportSymptomsCSV(w io.Writer, reg *SymptomRegistry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "category", "severity_weight", "description"}); err != nil {
		return err
	}
	for _, s := range reg.All() {
		row := []string{
			s.ID,
			s.Name,
			string(s.Category),
			strconv.FormatFloat(s.SeverityWeight, 'g', -1, 64),
			s.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportDiseasesCSV writes one row per disease with the rule sets joined
// by "|" so the file stays one-row-per-disease.
func ExportDiseasesCSV(w io.Writer, kb *KnowledgeBase) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "name", "category", "severity", "urgency",
		"required", "common", "optional", "excluding", "typical_duration", "contagious"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, d := range kb.All() {
		row := []string{
			d.ID,
			d.Name,
			d.Category,
			string(d.Severity),
			string(d.Urgency),
			strings.Join(d.RequiredSymptoms, "|"),
			strings.Join(d.CommonSymptoms, "|"),
			strings.Join(d.OptionalSymptoms, "|"),
			strings.Join(d.ExcludingSymptoms, "|"),
			d.TypicalDuration,
			strconv.FormatBool(d.Contagious),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
