package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/artpar/offerview/app"
	"github.com/artpar/offerview/core/registry"
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/offer"
	"github.com/artpar/offerview/domain/service"
)

// moduleResponse is the catalog listing shape.
type moduleResponse struct {
	ID              module.ID `json:"id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon"`
	SupportsDisplay bool      `json:"supports_display"`
	SupportsForm    bool      `json:"supports_form"`
}

// ListModules returns the module catalog.
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	defs := h.registry.Registry().Catalog().List()
	out := make([]moduleResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, moduleResponse{
			ID:              d.ID,
			Name:            d.Name,
			Icon:            d.Icon,
			SupportsDisplay: d.SupportsDisplay,
			SupportsForm:    d.SupportsForm,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"modules": out})
}

// CategoryModules returns the resolved, ordered module instances for a
// category. Unknown categories resolve through the fallback table, so
// this endpoint never 404s.
func (h *Handler) CategoryModules(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	subCategory := r.URL.Query().Get("sub_category")

	mode, ok := registry.ParseListMode(r.URL.Query().Get("mode"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_mode", "mode must be detail or form")
		return
	}

	instances := h.registry.ModulesFor(category, subCategory, mode)
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"mode":     mode,
		"modules":  instances,
	})
}

// ListDefinitions returns all stored service definitions.
func (h *Handler) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"definitions": h.registry.Definitions(),
	})
}

// GetDefinition returns the stored definition for one category.
func (h *Handler) GetDefinition(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	subCategory := r.URL.Query().Get("sub_category")

	def, ok := h.registry.Definition(category, subCategory)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no definition for category")
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// UpsertDefinition replaces a category's definition. Replacement is
// wholesale: lists omitted from the body end up empty, they do not
// inherit from the previous override.
func (h *Handler) UpsertDefinition(w http.ResponseWriter, r *http.Request) {
	var def service.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", "invalid definition body")
		return
	}

	// The URL owns the category; the body may not redirect it.
	def.Category = chi.URLParam(r, "category")
	if def.Category == "" {
		writeError(w, http.StatusBadRequest, "bad_category", "category is required")
		return
	}

	h.registry.Upsert(def)
	writeJSON(w, http.StatusOK, def)
}

// RemoveDefinition deletes a category's override.
func (h *Handler) RemoveDefinition(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if sub := r.URL.Query().Get("sub_category"); sub != "" {
		category = category + "/" + sub
	}

	if !h.registry.Remove(category) {
		writeError(w, http.StatusNotFound, "not_found", "no definition for category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderRequest is the render endpoint body.
type renderRequest struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Role        string `json:"role,omitempty"`

	Offer           *offer.Offer        `json:"offer,omitempty"`
	Venue           *offer.Venue        `json:"venue,omitempty"`
	EventDetails    *offer.EventDetails `json:"event_details,omitempty"`
	OrganizerBudget *float64            `json:"organizer_budget,omitempty"`
}

// Render runs the full pipeline: transform the supplied entities, resolve
// the category's module list, and produce the view tree. Data problems
// never fail the request; only malformed transport does.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", "invalid render request body")
		return
	}
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "bad_category", "category is required")
		return
	}

	mode := module.ModeView
	if req.Mode != "" {
		var err error
		if mode, err = module.ParseMode(req.Mode); err != nil {
			writeError(w, http.StatusBadRequest, "bad_mode", err.Error())
			return
		}
	}

	role := module.RoleOrganizer
	if req.Role != "" {
		var err error
		if role, err = module.ParseRole(req.Role); err != nil {
			writeError(w, http.StatusBadRequest, "bad_role", err.Error())
			return
		}
	}

	listMode := registry.ListDetail
	if mode.UsesForm() {
		listMode = registry.ListForm
	}

	start := time.Now()
	data := app.TransformOfferToModuleData(req.Offer, req.Venue, req.EventDetails, req.OrganizerBudget)
	instances := h.registry.ModulesFor(req.Category, req.SubCategory, listMode)
	nodes := h.renderer.Render(instances, &data, mode, role)

	if h.metrics != nil {
		h.metrics.RenderPasses.WithLabelValues(req.Category, string(mode)).Inc()
		h.metrics.RenderDuration.Observe(time.Since(start).Seconds())
		for _, n := range nodes {
			h.metrics.ModulesRendered.WithLabelValues(string(n.ModuleID)).Inc()
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": req.Category,
		"mode":     mode,
		"role":     role,
		"modules":  nodes,
	})
}
