package handlers

import (
	"net/http"
	"strings"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
)

// GetHomepageEvent returns the featured homepage event, synthesizing the
// default when none has been saved. Never 404s.
func GetHomepageEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := d.HomepageEvent.Get(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch homepage event", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"event": event})
	}
}

// SetHomepageEvent overwrites the featured homepage event. All four display
// fields are required; values are trimmed before storing.
func SetHomepageEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body content.HomepageEvent
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		event := &content.HomepageEvent{
			Title:       strings.TrimSpace(body.Title),
			Description: strings.TrimSpace(body.Description),
			Date:        strings.TrimSpace(body.Date),
			Time:        strings.TrimSpace(body.Time),
			UpdatedAt:   content.Timestamp(d.TimeNow()),
		}
		if event.Title == "" || event.Description == "" || event.Date == "" || event.Time == "" {
			writeError(w, http.StatusBadRequest,
				"Missing required fields: title, description, date, and time are required", nil)
			return
		}

		if err := d.HomepageEvent.Set(r.Context(), event); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save homepage event", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": event})
	}
}
