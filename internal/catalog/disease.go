package catalog

// DiseaseSeverity grades how serious a disease typically is.
type DiseaseSeverity string

const (
	SeverityLeve       DiseaseSeverity = "Leve"
	SeverityModerada   DiseaseSeverity = "Moderada"
	SeverityGrave      DiseaseSeverity = "Grave"
	SeverityEmergencia DiseaseSeverity = "Emergencia"
)

// Urgency tells the patient how soon to seek care.
type Urgency string

const (
	UrgencyAutocuidado        Urgency = "Autocuidado en casa"
	UrgencyConsultaProgramada Urgency = "Consultar médico en 2-3 días"
	UrgencyConsultaUrgente    Urgency = "Consultar médico en 24 horas"
	UrgencyEmergencia         Urgency = "Acudir a emergencias inmediatamente"
)

// Disease is a diagnostic rule plus patient-facing metadata. The four
// symptom sets are disjoint by convention: Required∩Excluding and
// Common∩Excluding must be empty. The engine does not enforce this; the
// Validate pass reports violations as data defects.
type Disease struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	RequiredSymptoms  []string `json:"required_symptoms"`
	CommonSymptoms    []string `json:"common_symptoms"`
	OptionalSymptoms  []string `json:"optional_symptoms"`
	ExcludingSymptoms []string `json:"excluding_symptoms"`

	Severity DiseaseSeverity `json:"severity"`
	Urgency  Urgency         `json:"urgency"`

	Recommendations  []string `json:"recommendations"`
	WarningSigns     []string `json:"warning_signs"`
	Prevention       []string `json:"prevention"`
	GeneralTreatment []string `json:"general_treatment"`

	TypicalDuration string `json:"typical_duration"`
	Contagious      bool   `json:"contagious"`
}

// KnowledgeBase holds every disease rule. Like the symptom registry it is
// populated once and preserves insertion order for deterministic
// evaluation.
type KnowledgeBase struct {
	byID  map[string]*Disease
	order []string
}

func NewKnowledgeBase() *KnowledgeBase {
	kb := &KnowledgeBase{byID: make(map[string]*Disease)}
	for i := range seedDiseases {
		kb.Register(&seedDiseases[i])
	}
	return kb
}

// EmptyKnowledgeBase returns a knowledge base with no diseases, for
// callers that build their own catalog.
func EmptyKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{byID: make(map[string]*Disease)}
}

func (kb *KnowledgeBase) Register(d *Disease) {
	if _, exists := kb.byID[d.ID]; !exists {
		kb.order = append(kb.order, d.ID)
	}
	kb.byID[d.ID] = d
}

// Get returns nil when the disease id is unknown.
func (kb *KnowledgeBase) Get(id string) *Disease {
	return kb.byID[id]
}

// All returns the diseases in registration order.
func (kb *KnowledgeBase) All() []*Disease {
	out := make([]*Disease, 0, len(kb.order))
	for _, id := range kb.order {
		out = append(out, kb.byID[id])
	}
	return out
}

func (kb *KnowledgeBase) ByCategory(category string) []*Disease {
	var out []*Disease
	for _, id := range kb.order {
		if d := kb.byID[id]; d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.order)
}
