package handlers

import (
	"net/http"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
)

// GetLiveStream returns the live stream settings, defaulting to offline with
// the standard schedule message when nothing has been saved.
func GetLiveStream(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := d.LiveStream.Get(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Failed to fetch live stream data",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": settings})
	}
}

// UpdateLiveStream overwrites the live stream settings. isLive must be an
// actual boolean; a missing or mistyped value is rejected.
func UpdateLiveStream(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IsLive       *bool  `json:"isLive"`
			YoutubeURL   string `json:"youtubeUrl"`
			ScheduleText string `json:"scheduleText"`
		}
		if err := decodeBody(r, &body); err != nil || body.IsLive == nil {
			writeError(w, http.StatusBadRequest, "Invalid isLive value", nil)
			return
		}

		settings := &content.LiveStreamSettings{
			IsLive:       *body.IsLive,
			YoutubeURL:   body.YoutubeURL,
			ScheduleText: body.ScheduleText,
			UpdatedAt:    content.Timestamp(d.TimeNow()),
		}
		if settings.ScheduleText == "" {
			settings.ScheduleText = content.DefaultScheduleText
		}

		if err := d.LiveStream.Set(r.Context(), settings); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Failed to update live stream data",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Live stream settings updated successfully",
			"data":    settings,
		})
	}
}
