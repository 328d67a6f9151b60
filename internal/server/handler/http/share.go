package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/share"
)

// ShareService defines the ephemeral-link operations required by the
// ShareHandler.
type ShareService interface {
	Share(ctx context.Context, opts share.PushOptions) models.PushResult
	ExpireLink(ctx context.Context, token string) models.ExpireResult
	Links() []models.ShareLink
}

// ShareHandler handles link creation, expiration, and history listing.
type ShareHandler struct {
	Service ShareService
}

// pushRequest mirrors share.PushOptions with JSON field names.
type pushRequest struct {
	ExpireDays        int    `json:"expire_days"`
	ExpireViews       int    `json:"expire_views"`
	DeletableByViewer bool   `json:"deletable_by_viewer"`
	RetrievalStep     bool   `json:"retrieval_step"`
	Passphrase        string `json:"passphrase"`
	UseQRCode         bool   `json:"use_qr_code"`
	PreferCurl        bool   `json:"prefer_curl"`
}

// Push handles POST /api/share. Always 200; the result carries the outcome.
func (h *ShareHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	result := h.Service.Share(r.Context(), share.PushOptions{
		ExpireDays:        req.ExpireDays,
		ExpireViews:       req.ExpireViews,
		DeletableByViewer: req.DeletableByViewer,
		RetrievalStep:     req.RetrievalStep,
		Passphrase:        req.Passphrase,
		UseQRCode:         req.UseQRCode,
		PreferCurl:        req.PreferCurl,
	})
	writeJSON(w, http.StatusOK, result)
}

// Expire handles DELETE /api/links/{token}.
func (h *ShareHandler) Expire(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing token"})
		return
	}
	writeJSON(w, http.StatusOK, h.Service.ExpireLink(r.Context(), token))
}

// Links handles GET /api/links, returning the session history in creation
// order.
func (h *ShareHandler) Links(w http.ResponseWriter, r *http.Request) {
	links := h.Service.Links()
	if links == nil {
		links = []models.ShareLink{}
	}
	writeJSON(w, http.StatusOK, struct {
		Links []models.ShareLink `json:"links"`
	}{Links: links})
}
