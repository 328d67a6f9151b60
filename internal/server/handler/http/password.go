package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/service"
)

func encodeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// errorResponse is the body of every rejected request.
type errorResponse struct {
	Error string `json:"error"`
}

// PasswordService defines the generation, scoring, and transliteration
// operations required by the PasswordHandler.
type PasswordService interface {
	GenerateRandom(params models.RandomParams) (service.PasswordResult, error)
	GenerateMemorable(params models.MemorableParams) (service.PasswordResult, error)
	SetPassword(password string)
	Score(password string) models.StrengthReport
	Transliterate(password, alphabet string) ([]models.PhoneticPair, error)
}

// PasswordHandler handles generation, manual password entry, scoring, and
// phonetic transliteration.
type PasswordHandler struct {
	Service PasswordService
}

// GenerateRandom handles POST /api/generate/random.
func (h *PasswordHandler) GenerateRandom(w http.ResponseWriter, r *http.Request) {
	var params models.RandomParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	result, err := h.Service.GenerateRandom(params)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GenerateMemorable handles POST /api/generate/memorable.
func (h *PasswordHandler) GenerateMemorable(w http.ResponseWriter, r *http.Request) {
	var params models.MemorableParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	result, err := h.Service.GenerateMemorable(params)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SetPassword handles POST /api/password: the user typed or edited the
// password field, which resets the per-password rate-limit flags.
func (h *PasswordHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	h.Service.SetPassword(req.Password)
	writeJSON(w, http.StatusOK, h.Service.Score(req.Password))
}

// Strength handles POST /api/strength without touching session state.
func (h *PasswordHandler) Strength(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	writeJSON(w, http.StatusOK, h.Service.Score(req.Password))
}

// Phonetic handles POST /api/phonetic, returning ordered (char, word) pairs.
func (h *PasswordHandler) Phonetic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
		Alphabet string `json:"alphabet"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	pairs, err := h.Service.Transliterate(req.Password, req.Alphabet)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Pairs []models.PhoneticPair `json:"pairs"`
	}{Pairs: pairs})
}
