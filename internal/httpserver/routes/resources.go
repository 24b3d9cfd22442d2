package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerResources) }

func registerResources(r chi.Router, d deps.Deps) {
	r.Get("/resources", handlers.ListResources(d))
	r.Get("/resources/{id}", handlers.GetResource(d))
	r.Post("/resources/{id}/download", handlers.DownloadResource(d))

	admin := r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy))
	admin.Post("/resources", handlers.CreateResource(d))
	admin.Put("/resources/{id}", handlers.UpdateResource(d))
	admin.Delete("/resources/{id}", handlers.DeleteResource(d))
}
