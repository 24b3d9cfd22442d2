package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/logger"
)

// ListEvents returns all events, earliest date first. Store failures degrade
// to an empty list so public pages keep rendering.
func ListEvents(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := d.Events.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list events", logger.Error(err))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": []*content.Event{}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": events})
	}
}

// UpcomingEvents filters the event list to dates at or after the wall clock
// at call time. A pure filter over the listing, no separate index.
func UpcomingEvents(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := d.Events.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list upcoming events", logger.Error(err))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": []*content.Event{}})
			return
		}
		upcoming := content.UpcomingEvents(events, d.TimeNow())
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": upcoming})
	}
}

func GetEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := d.Events.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Event not found", "Failed to fetch event")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": event})
	}
}

func CreateEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event content.Event
		if err := decodeBody(r, &event); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if err := d.Events.Create(r.Context(), &event); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create event", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": &event})
	}
}

func UpdateEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]json.RawMessage
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		event, err := d.Events.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, "Event not found", "Failed to update event")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": event})
	}
}

func DeleteEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Events.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeStoreError(w, err, "Event not found", "Failed to delete event")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Event deleted successfully"})
	}
}
