package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
)

// writeJSON encodes v with the standard headers. Encoding errors are ignored:
// by the time Encode fails the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the {error, details} shape used by all content endpoints.
func writeError(w http.ResponseWriter, status int, msg string, err error) {
	body := map[string]any{"error": msg}
	if err != nil {
		body["details"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeStoreError maps repository sentinel errors onto HTTP statuses:
// not-found 404, validation 400, conflict and everything else 500.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, redisstore.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": notFoundMsg})
	case errors.Is(err, redisstore.ErrValidation):
		writeError(w, http.StatusBadRequest, failMsg, err)
	default:
		writeError(w, http.StatusInternalServerError, failMsg, err)
	}
}

func decodeBody(r *http.Request, dest any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(dest)
}
