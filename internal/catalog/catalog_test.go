package catalog

import "testing"

func TestSeedCatalogSizes(t *testing.T) {
	reg := NewSymptomRegistry()
	kb := NewKnowledgeBase()

	if reg.Len() != 49 {
		t.Errorf("registry size = %d, want 49", reg.Len())
	}
	if kb.Len() != 10 {
		t.Errorf("knowledge base size = %d, want 10", kb.Len())
	}
}

func TestRegistrationOrderPreserved(t *testing.T) {
	reg := NewSymptomRegistry()
	kb := NewKnowledgeBase()

	if first := reg.All()[0].ID; first != "TOS_SECA" {
		t.Errorf("first symptom = %s, want TOS_SECA", first)
	}
	if first := kb.All()[0].ID; first != "GRIPE" {
		t.Errorf("first disease = %s, want GRIPE", first)
	}

	// Two passes must yield identical order.
	a, b := reg.All(), reg.All()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("iteration order unstable at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestRegisterOverwriteKeepsOrder(t *testing.T) {
	reg := EmptySymptomRegistry()
	reg.Register(&Symptom{ID: "A", Name: "primero"})
	reg.Register(&Symptom{ID: "B", Name: "segundo"})
	reg.Register(&Symptom{ID: "A", Name: "reemplazo"})

	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
	if got := reg.Get("A").Name; got != "reemplazo" {
		t.Errorf("Get(A).Name = %q, want reemplazo", got)
	}
	if first := reg.All()[0].ID; first != "A" {
		t.Errorf("first id after overwrite = %s, want A", first)
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	reg := NewSymptomRegistry()
	kb := NewKnowledgeBase()

	if reg.Get("NO_EXISTE") != nil {
		t.Error("registry Get of unknown id is not nil")
	}
	if kb.Get("NO_EXISTE") != nil {
		t.Error("knowledge base Get of unknown id is not nil")
	}
}

func TestByCategory(t *testing.T) {
	reg := NewSymptomRegistry()

	urinarios := reg.ByCategory(CategoryUrinario)
	if len(urinarios) != 4 {
		t.Fatalf("urinary symptoms = %d, want 4", len(urinarios))
	}
	for _, s := range urinarios {
		if s.Category != CategoryUrinario {
			t.Errorf("symptom %s has category %s", s.ID, s.Category)
		}
	}

	kb := NewKnowledgeBase()
	virales := kb.ByCategory("Infección Respiratoria Viral")
	if len(virales) != 2 {
		t.Fatalf("viral respiratory diseases = %d, want 2", len(virales))
	}
}

func TestSearch(t *testing.T) {
	reg := NewSymptomRegistry()

	got := reg.Search("tos")
	if len(got) != 2 {
		t.Fatalf("Search(tos) returned %d symptoms, want 2", len(got))
	}
	if got[0].ID != "TOS_SECA" || got[1].ID != "TOS_PRODUCTIVA" {
		t.Errorf("Search(tos) = %s, %s", got[0].ID, got[1].ID)
	}

	if len(reg.Search("zzzz")) != 0 {
		t.Error("Search of nonsense returned results")
	}
}

func TestAllCategoriesCount(t *testing.T) {
	if len(AllCategories()) != 10 {
		t.Fatalf("categories = %d, want 10", len(AllCategories()))
	}
}
