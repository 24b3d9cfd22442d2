package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/logger"
	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
)

// AdminLogin verifies the shared admin password and issues a session token.
// The first ever login initializes the credential to its default.
func AdminLogin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if err := d.Credential.Verify(r.Context(), body.Password); err != nil {
			if errors.Is(err, redisstore.ErrUnauthorized) {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "Incorrect password",
				})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
			return
		}

		token, err := d.Sessions.Issue()
		if err != nil {
			d.Logger.Error("failed to issue admin session", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Failed to create session",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
	}
}

// InitAdminPassword lazily initializes the admin credential. Kept for the
// admin screen's first-run flow; it never returns the password itself, only
// confirmation that a credential exists.
func InitAdminPassword(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Credential.EnsureInitialized(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// ChangeAdminPassword rotates the shared credential after verifying the
// current one and enforcing the length-and-difference policy.
func ChangeAdminPassword(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		err := d.Credential.Change(r.Context(), body.CurrentPassword, body.NewPassword)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"message": "Password changed successfully",
			})
		case errors.Is(err, redisstore.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"error":   "Current password is incorrect",
			})
		case errors.Is(err, redisstore.ErrValidation):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   policyMessage(err),
			})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
		}
	}
}

// policyMessage strips the sentinel prefix so the admin screen gets just the
// human-readable rule that was violated.
func policyMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return strings.ToUpper(msg[i+2:i+3]) + msg[i+3:]
	}
	return msg
}

// ReloadMinistries triggers an immediate catalog reload.
func ReloadMinistries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.ReloadTrigger == nil {
			writeError(w, http.StatusNotFound, "Ministry catalog not configured", nil)
			return
		}
		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual catalog reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, map[string]any{
				"success": true,
				"message": "Reload triggered",
			})
		default:
			d.Logger.Warn("catalog reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"success": false,
				"error":   "Reload already in progress",
			})
		}
	}
}
