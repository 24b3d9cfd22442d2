package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/httpserver/handlers"
	"github.com/ugmchurch/steeple/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})).Post("/admin/login", handlers.AdminLogin(d))

	r.Post("/admin/get-password", handlers.InitAdminPassword(d))

	admin := r.With(mw.RequireAdmin(d.Sessions, d.Logger, d.TrustProxy))
	admin.Post("/admin/change-password", handlers.ChangeAdminPassword(d))
	admin.Post("/admin/reload-ministries", handlers.ReloadMinistries(d))
}
