// Package http provides HTTP routing and handlers exposing the passforge
// core to a rendering layer. Every endpoint answers JSON result values;
// remote-call failures surface as success flags, never as 5xx pages.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mkarlsson/passforge/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API router.
//
// Routes:
//
//	POST   /api/generate/random    → PasswordHandler.GenerateRandom
//	POST   /api/generate/memorable → PasswordHandler.GenerateMemorable
//	POST   /api/password           → PasswordHandler.SetPassword
//	POST   /api/strength           → PasswordHandler.Strength
//	POST   /api/phonetic           → PasswordHandler.Phonetic
//	POST   /api/breach-check       → BreachHandler.Check
//	GET    /api/gates              → BreachHandler.Gates
//	POST   /api/share              → ShareHandler.Push
//	GET    /api/links              → ShareHandler.Links
//	DELETE /api/links/{token}      → ShareHandler.Expire
//	GET    /api/presets            → PresetHandler.List
//	POST   /api/presets            → PresetHandler.Add
//	PUT    /api/presets/{name}     → PresetHandler.Edit
//	DELETE /api/presets/{name}     → PresetHandler.Remove
//	PUT    /api/presets/{name}/enabled → PresetHandler.SetEnabled
func NewRouter(
	passwordHandler *PasswordHandler,
	breachHandler *BreachHandler,
	shareHandler *ShareHandler,
	presetHandler *PresetHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate/random", passwordHandler.GenerateRandom)
		r.Post("/generate/memorable", passwordHandler.GenerateMemorable)
		r.Post("/password", passwordHandler.SetPassword)
		r.Post("/strength", passwordHandler.Strength)
		r.Post("/phonetic", passwordHandler.Phonetic)

		r.Post("/breach-check", breachHandler.Check)
		r.Get("/gates", breachHandler.Gates)

		r.Post("/share", shareHandler.Push)
		r.Get("/links", shareHandler.Links)
		r.Delete("/links/{token}", shareHandler.Expire)

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", presetHandler.List)
			r.Post("/", presetHandler.Add)
			r.Put("/{name}", presetHandler.Edit)
			r.Delete("/{name}", presetHandler.Remove)
			r.Put("/{name}/enabled", presetHandler.SetEnabled)
		})
	})

	return r
}

// writeJSON encodes v with the JSON content type and the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = encodeJSON(w, v)
}
