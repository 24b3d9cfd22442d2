package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerHomepageEvent) }

func registerHomepageEvent(r chi.Router, d deps.Deps) {
	r.Get("/homepage-event", handlers.GetHomepageEvent(d))
	r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy)).
		Post("/homepage-event", handlers.SetHomepageEvent(d))
}
