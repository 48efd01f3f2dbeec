package catalog

import "fmt"

// IssueKind classifies catalog data defects.
type IssueKind string

const (
	IssueOverlap    IssueKind = "set_overlap"
	IssueOrphanRef  IssueKind = "orphan_reference"
	IssueBadWeight  IssueKind = "bad_weight"
	IssueEmptyRules IssueKind = "empty_rules"
)

// Issue is one data-quality finding from the validation pass.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Kind, i.Subject, i.Detail)
}

// Validate runs the strict consistency pass over both catalogs. It lives
// outside the scoring path on purpose: the engine silently tolerates every
// defect reported here.
func Validate(kb *KnowledgeBase, reg *SymptomRegistry) []Issue {
	var issues []Issue

	for _, s := range reg.All() {
		if s.SeverityWeight <= 0 {
			issues = append(issues, Issue{
				Kind:    IssueBadWeight,
				Subject: s.ID,
				Detail:  fmt.Sprintf("severity weight must be positive, got %g", s.SeverityWeight),
			})
		}
		for _, rel := range s.RelatedSymptoms {
			if !reg.Has(rel) {
				issues = append(issues, Issue{
					Kind:    IssueOrphanRef,
					Subject: s.ID,
					Detail:  fmt.Sprintf("related symptom %q is not in the registry", rel),
				})
			}
		}
	}

	for _, d := range kb.All() {
		excluding := make(map[string]bool, len(d.ExcludingSymptoms))
		for _, id := range d.ExcludingSymptoms {
			excluding[id] = true
		}
		for _, id := range d.RequiredSymptoms {
			if excluding[id] {
				issues = append(issues, Issue{
					Kind:    IssueOverlap,
					Subject: d.ID,
					Detail:  fmt.Sprintf("symptom %q is both required and excluding", id),
				})
			}
		}
		for _, id := range d.CommonSymptoms {
			if excluding[id] {
				issues = append(issues, Issue{
					Kind:    IssueOverlap,
					Subject: d.ID,
					Detail:  fmt.Sprintf("symptom %q is both common and excluding", id),
				})
			}
		}

		if len(d.RequiredSymptoms) == 0 && len(d.CommonSymptoms) == 0 && len(d.OptionalSymptoms) == 0 {
			issues = append(issues, Issue{
				Kind:    IssueEmptyRules,
				Subject: d.ID,
				Detail:  "disease has no required, common or optional symptoms",
			})
		}

		for _, group := range [][]string{d.RequiredSymptoms, d.CommonSymptoms, d.OptionalSymptoms, d.ExcludingSymptoms} {
			for _, id := range group {
				if !reg.Has(id) {
					issues = append(issues, Issue{
						Kind:    IssueOrphanRef,
						Subject: d.ID,
						Detail:  fmt.Sprintf("rule references unknown symptom %q", id),
					})
				}
			}
		}
	}

	return issues
}
