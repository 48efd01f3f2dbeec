package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the read-only catalog over HTTP.
type Handler struct {
	kb  *KnowledgeBase
	reg *SymptomRegistry
}

func NewHandler(kb *KnowledgeBase, reg *SymptomRegistry) *Handler {
	return &Handler{kb: kb, reg: reg}
}

func (h *Handler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var symptoms []*Symptom
	switch {
	case q.Get("q") != "":
		symptoms = h.reg.Search(q.Get("q"))
	case q.Get("category") != "":
		symptoms = h.reg.ByCategory(SymptomCategory(q.Get("category")))
	default:
		symptoms = h.reg.All()
	}
	writeJSON(w, symptoms)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, AllCategories())
}

func (h *Handler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, h.kb.ByCategory(category))
		return
	}
	writeJSON(w, h.kb.All())
}

func (h *Handler) GetDisease(w http.ResponseWriter, r *http.Request) {
	d := h.kb.Get(chi.URLParam(r, "diseaseID"))
	if d == nil {
		http.Error(w, "Enfermedad no encontrada", http.StatusNotFound)
		return
	}
	writeJSON(w, d)
}

// ValidateCatalog reports data defects in the loaded catalogs.
func (h *Handler) ValidateCatalog(w http.ResponseWriter, r *http.Request) {
	issues := Validate(h.kb, h.reg)
	writeJSON(w, map[string]any{
		"issue_count": len(issues),
		"issues":      issues,
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/symptoms", h.ListSymptoms)
	r.Get("/symptoms/categories", h.ListCategories)
	r.Get("/diseases", h.ListDiseases)
	r.Get("/diseases/{diseaseID}", h.GetDisease)
	r.Get("/catalog/validate", h.ValidateCatalog)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
