package mw

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ugmchurch/steeple/internal/auth"
	"github.com/ugmchurch/steeple/internal/logger"
	"github.com/ugmchurch/steeple/internal/utils"
)

// AdminTokenHeader carries the admin session token. A separate header from
// Authorization, which holds the shared API key.
const AdminTokenHeader = "X-Admin-Token"

// APIKey gates every endpoint behind a shared bearer key when one is
// configured. An empty key leaves the API open, matching deployments that
// front the service with their own gateway.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				unauthorized(w, "Invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates content-mutating endpoints behind a valid admin session
// token issued by /admin/login.
func RequireAdmin(sessions *auth.Sessions, log logger.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)
			if token == "" {
				unauthorized(w, "Admin session required")
				return
			}
			if err := sessions.Verify(token); err != nil {
				log.Warn("rejected admin request",
					logger.String("path", r.URL.Path),
					logger.String("remote_ip", utils.ClientIP(r, trustProxy)))
				unauthorized(w, "Invalid or expired session")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
