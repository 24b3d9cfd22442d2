package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerLiveStream) }

func registerLiveStream(r chi.Router, d deps.Deps) {
	r.Get("/live-stream/get", handlers.GetLiveStream(d))
	r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy)).
		Post("/live-stream/update", handlers.UpdateLiveStream(d))
}
