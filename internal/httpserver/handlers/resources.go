package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/logger"
	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
)

// ListResources returns all resources, newest first. Store failures degrade
// to an empty list so public pages keep rendering.
func ListResources(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := d.Resources.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list resources", logger.Error(err))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "resources": []*content.Resource{}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "resources": resources})
	}
}

func GetResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource, err := d.Resources.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Resource not found", "Failed to fetch resource")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "resource": resource})
	}
}

func CreateResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resource content.Resource
		if err := decodeBody(r, &resource); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		resource.DownloadCount = 0
		if err := d.Resources.Create(r.Context(), &resource); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create resource", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "resource": &resource})
	}
}

func UpdateResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]json.RawMessage
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		resource, err := d.Resources.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, "Resource not found", "Failed to update resource")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "resource": resource})
	}
}

func DeleteResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Resources.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeStoreError(w, err, "Resource not found", "Failed to delete resource")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Resource deleted successfully"})
	}
}

// DownloadResource bumps the download counter. Downloads of ids that no
// longer exist succeed silently; the file itself is served elsewhere and the
// count is informational.
func DownloadResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := d.Resources.Mutate(r.Context(), chi.URLParam(r, "id"), func(res *content.Resource) {
			res.DownloadCount++
		})
		if err != nil && !errors.Is(err, redisstore.ErrNotFound) {
			writeError(w, http.StatusInternalServerError, "Failed to increment download count", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
