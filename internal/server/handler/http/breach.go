package http

import (
	"context"
	"net/http"

	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/service"
)

// BreachService defines the gated breach-lookup operations required by the
// BreachHandler.
type BreachService interface {
	// CheckBreach looks the current password up in the breach database,
	// honoring the availability probe and the rate-limit gate. All failures
	// are carried inside the result.
	CheckBreach(ctx context.Context) models.BreachResult
	// Gates reports the state of every rate-limit gate.
	Gates() []service.GateStatus
}

// BreachHandler handles breach lookups and gate inspection.
type BreachHandler struct {
	Service BreachService
}

// Check handles POST /api/breach-check. The lookup always answers 200 with
// a result value; a failed probe or a closed gate is data, not an HTTP error.
func (h *BreachHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.CheckBreach(r.Context()))
}

// Gates handles GET /api/gates so the UI can render button states.
func (h *BreachHandler) Gates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Gates []service.GateStatus `json:"gates"`
	}{Gates: h.Service.Gates()})
}
