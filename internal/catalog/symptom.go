package catalog

import "strings"

// SymptomCategory classifies symptoms by body system.
type SymptomCategory string

const (
	CategoryRespiratorio          SymptomCategory = "Respiratorio"
	CategoryDigestivo             SymptomCategory = "Digestivo"
	CategoryNeurologico           SymptomCategory = "Neurológico"
	CategoryDermatologico         SymptomCategory = "Dermatológico"
	CategoryCardiovascular        SymptomCategory = "Cardiovascular"
	CategoryMuscular              SymptomCategory = "Muscular"
	CategoryGeneral               SymptomCategory = "General"
	CategoryUrinario              SymptomCategory = "Urinario"
	CategoryOftalmologico         SymptomCategory = "Oftalmológico"
	CategoryOtorrinolaringologico SymptomCategory = "Otorrinolaringológico"
)

// AllCategories lists every symptom category in display order.
func AllCategories() []SymptomCategory {
	return []SymptomCategory{
		CategoryRespiratorio,
		CategoryDigestivo,
		CategoryNeurologico,
		CategoryDermatologico,
		CategoryCardiovascular,
		CategoryMuscular,
		CategoryGeneral,
		CategoryUrinario,
		CategoryOftalmologico,
		CategoryOtorrinolaringologico,
	}
}

// Symptom is a catalog-defined clinical sign. SeverityWeight is the
// intrinsic clinical weight of the symptom, independent of how severe a
// patient reports it. RelatedSymptoms is informational only and never
// feeds the scoring algorithm.
type Symptom struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        SymptomCategory `json:"category"`
	Description     string          `json:"description"`
	SeverityWeight  float64         `json:"severity_weight"`
	RelatedSymptoms []string        `json:"related_symptoms,omitempty"`
}

// SymptomRegistry holds every known symptom. It is populated once and
// read-only afterwards; insertion order is preserved so that iteration
// stays deterministic across calls.
type SymptomRegistry struct {
	byID  map[string]*Symptom
	order []string
}

func NewSymptomRegistry() *SymptomRegistry {
	r := &SymptomRegistry{byID: make(map[string]*Symptom)}
	for i := range seedSymptoms {
		r.Register(&seedSymptoms[i])
	}
	return r
}

// EmptySymptomRegistry returns a registry with no symptoms, for callers
// that build their own catalog.
func EmptySymptomRegistry() *SymptomRegistry {
	return &SymptomRegistry{byID: make(map[string]*Symptom)}
}

func (r *SymptomRegistry) Register(s *Symptom) {
	if _, exists := r.byID[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
}

// Get returns nil when the id is unknown. Callers in the scoring path
// treat a nil symptom as absent rather than failing.
func (r *SymptomRegistry) Get(id string) *Symptom {
	return r.byID[id]
}

func (r *SymptomRegistry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the symptoms in registration order.
func (r *SymptomRegistry) All() []*Symptom {
	out := make([]*Symptom, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *SymptomRegistry) ByCategory(c SymptomCategory) []*Symptom {
	var out []*Symptom
	for _, id := range r.order {
		if s := r.byID[id]; s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// Search matches the query against symptom names and descriptions,
// case-insensitively.
func (r *SymptomRegistry) Search(query string) []*Symptom {
	query = strings.ToLower(query)
	var out []*Symptom
	for _, id := range r.order {
		s := r.byID[id]
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Description), query) {
			out = append(out, s)
		}
	}
	return out
}

func (r *SymptomRegistry) Len() int {
	return len(r.order)
}
