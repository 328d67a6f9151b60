package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/preset"
)

// PresetHandler exposes the preset store over HTTP.
type PresetHandler struct {
	Store *preset.Store
}

// presetRequest is the body of add and edit operations.
type presetRequest struct {
	Name                string `json:"name"`
	Length              int    `json:"length"`
	IncludeUppercase    bool   `json:"include_uppercase"`
	IncludeNumbers      bool   `json:"include_numbers"`
	IncludeSpecial      bool   `json:"include_special"`
	IsSelectedByDefault bool   `json:"is_selected_by_default"`
}

// presetStatus maps store errors onto HTTP statuses.
func presetStatus(err error) int {
	switch {
	case errors.Is(err, preset.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, preset.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, preset.ErrBuiltIn):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// List handles GET /api/presets: the full collection plus the resolved
// default selection.
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Presets  []models.PasswordPreset `json:"presets"`
		Selected string                  `json:"selected"`
	}{Presets: h.Store.List()}

	if selected, ok := h.Store.Selected(); ok {
		resp.Selected = selected.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /api/presets.
func (h *PresetHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	err := h.Store.Add(req.Name, req.Length,
		req.IncludeUppercase, req.IncludeNumbers, req.IncludeSpecial,
		req.IsSelectedByDefault)
	if err != nil {
		writeJSON(w, presetStatus(err), errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Edit handles PUT /api/presets/{name}; the body carries the new values,
// including a possibly changed name.
func (h *PresetHandler) Edit(w http.ResponseWriter, r *http.Request) {
	original := chi.URLParam(r, "name")

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	err := h.Store.Edit(original, req.Name, req.Length,
		req.IncludeUppercase, req.IncludeNumbers, req.IncludeSpecial,
		req.IsSelectedByDefault)
	if err != nil {
		writeJSON(w, presetStatus(err), errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /api/presets/{name}.
func (h *PresetHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Remove(chi.URLParam(r, "name")); err != nil {
		writeJSON(w, presetStatus(err), errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetEnabled handles PUT /api/presets/{name}/enabled.
func (h *PresetHandler) SetEnabled(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	if err := h.Store.SetEnabled(chi.URLParam(r, "name"), req.Enabled); err != nil {
		writeJSON(w, presetStatus(err), errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
