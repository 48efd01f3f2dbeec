package patient

import (
	"sort"

	"sintomed/internal/catalog"
)

// SeverityLevel is the patient-reported intensity of one symptom.
type SeverityLevel int

const (
	SeverityLeve     SeverityLevel = 1
	SeverityModerado SeverityLevel = 2
	SeverityGrave    SeverityLevel = 3
	SeverityCritico  SeverityLevel = 4
)

func (s SeverityLevel) String() string {
	switch s {
	case SeverityLeve:
		return "Leve"
	case SeverityModerado:
		return "Moderado"
	case SeverityGrave:
		return "Grave"
	case SeverityCritico:
		return "Crítico"
	default:
		return "Desconocido"
	}
}

// Entry is what the patient reported for one symptom.
type Entry struct {
	Severity     SeverityLevel `json:"severity"`
	DurationDays int           `json:"duration_days"`
	Note         string        `json:"note,omitempty"`
}

// Symptoms is the mutable per-consultation report: symptom id → Entry.
// One entry per symptom id; adding an id again replaces its entry. The
// report is owned by a single caller and is not safe for concurrent
// mutation.
type Symptoms struct {
	entries map[string]Entry
}

func NewSymptoms() *Symptoms {
	return &Symptoms{entries: make(map[string]Entry)}
}

// Add records a symptom, replacing any previous entry for the same id.
// It reports whether an entry already existed, so overwrite semantics
// stay observable.
func (p *Symptoms) Add(symptomID string, severity SeverityLevel, durationDays int, note string) bool {
	_, existed := p.entries[symptomID]
	p.entries[symptomID] = Entry{Severity: severity, DurationDays: durationDays, Note: note}
	return existed
}

// Remove reports whether the symptom was present.
func (p *Symptoms) Remove(symptomID string) bool {
	_, existed := p.entries[symptomID]
	delete(p.entries, symptomID)
	return existed
}

func (p *Symptoms) Clear() {
	p.entries = make(map[string]Entry)
}

func (p *Symptoms) Has(symptomID string) bool {
	_, ok := p.entries[symptomID]
	return ok
}

// Severity returns the reported level and whether the symptom is present.
func (p *Symptoms) Severity(symptomID string) (SeverityLevel, bool) {
	e, ok := p.entries[symptomID]
	return e.Severity, ok
}

// Duration returns the reported duration in days, 0 when absent.
func (p *Symptoms) Duration(symptomID string) int {
	return p.entries[symptomID].DurationDays
}

func (p *Symptoms) Note(symptomID string) string {
	return p.entries[symptomID].Note
}

func (p *Symptoms) Count() int {
	return len(p.entries)
}

// IDs returns the reported symptom ids in sorted order.
func (p *Symptoms) IDs() []string {
	ids := make([]string, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Entries returns a copy of the report keyed by symptom id.
func (p *Symptoms) Entries() map[string]Entry {
	out := make(map[string]Entry, len(p.entries))
	for id, e := range p.entries {
		out[id] = e
	}
	return out
}

// SeverityScore is the aggregate severity signal: for each reported
// symptom known to the registry, catalog weight times reported level,
// summed. Unknown ids contribute nothing.
func (p *Symptoms) SeverityScore(reg *catalog.SymptomRegistry) float64 {
	var total float64
	for id, e := range p.entries {
		if s := reg.Get(id); s != nil {
			total += s.SeverityWeight * float64(e.Severity)
		}
	}
	return total
}
