package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerEvents) }

func registerEvents(r chi.Router, d deps.Deps) {
	r.Get("/events", handlers.ListEvents(d))
	r.Get("/events/upcoming", handlers.UpcomingEvents(d))
	r.Get("/events/{id}", handlers.GetEvent(d))

	admin := r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy))
	admin.Post("/events", handlers.CreateEvent(d))
	admin.Put("/events/{id}", handlers.UpdateEvent(d))
	admin.Delete("/events/{id}", handlers.DeleteEvent(d))
}
