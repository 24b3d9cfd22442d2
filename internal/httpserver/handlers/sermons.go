package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/logger"
)

// ListSermons returns all sermons, most recent sermon date first. Store
// failures degrade to an empty list so public pages keep rendering.
func ListSermons(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sermons, err := d.Sermons.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list sermons", logger.Error(err))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "sermons": []*content.Sermon{}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "sermons": sermons})
	}
}

func GetSermon(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sermon, err := d.Sermons.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Sermon not found", "Failed to fetch sermon")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "sermon": sermon})
	}
}

func CreateSermon(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sermon content.Sermon
		if err := decodeBody(r, &sermon); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if err := d.Sermons.Create(r.Context(), &sermon); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create sermon", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "sermon": &sermon})
	}
}

func UpdateSermon(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]json.RawMessage
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		sermon, err := d.Sermons.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, "Sermon not found", "Failed to update sermon")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "sermon": sermon})
	}
}

func DeleteSermon(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sermons.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeStoreError(w, err, "Sermon not found", "Failed to delete sermon")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Sermon deleted successfully"})
	}
}
