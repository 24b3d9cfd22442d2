package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerVolunteer) }

func registerVolunteer(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})).Post("/volunteer/submit", handlers.SubmitApplication(d))

	r.Get("/volunteer/units", handlers.ListUnits(d))

	admin := r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy))
	admin.Get("/volunteer/applications", handlers.ListApplications(d))
	admin.Get("/volunteer/applications/export", handlers.ExportApplications(d))
}
