package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerSermons) }

func registerSermons(r chi.Router, d deps.Deps) {
	r.Get("/sermons", handlers.ListSermons(d))
	r.Get("/sermons/{id}", handlers.GetSermon(d))

	admin := r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy))
	admin.Post("/sermons", handlers.CreateSermon(d))
	admin.Put("/sermons/{id}", handlers.UpdateSermon(d))
	admin.Delete("/sermons/{id}", handlers.DeleteSermon(d))
}
