package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/logger"
	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
)

// SubmitApplication validates and stores a volunteer application, then fires
// the notification sinks in the background. The response reflects only the
// primary write; notification outcomes are never visible to the submitter.
func SubmitApplication(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var app content.Application
		if err := decodeBody(r, &app); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if len(app.MissingRequired()) > 0 {
			writeError(w, http.StatusBadRequest, "Missing required fields", nil)
			return
		}
		if !d.Catalog.Valid(app.SelectedUnit) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Unknown ministry unit: %s", app.SelectedUnit), nil)
			return
		}

		if err := d.Volunteers.Save(r.Context(), &app); err != nil {
			if errors.Is(err, redisstore.ErrValidation) {
				writeError(w, http.StatusBadRequest, "Missing required fields", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to submit application", err)
			return
		}

		d.Notifier.Dispatch(&app)

		writeJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"message":       "Application submitted successfully",
			"applicationId": app.ID,
		})
	}
}

// ListApplications returns every stored application, newest first.
func ListApplications(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applications, err := d.Volunteers.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch applications", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "applications": applications})
	}
}

// ExportApplications streams all applications as a CSV download.
func ExportApplications(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applications, err := d.Volunteers.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch applications", err)
			return
		}
		doc, err := content.ApplicationsCSV(applications)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to export applications", err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="volunteer-applications.csv"`)
		if _, err := w.Write(doc); err != nil {
			d.Logger.Debug("failed to write csv response", logger.Error(err))
		}
	}
}

// ListUnits returns the ministry unit catalog for the application form.
func ListUnits(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "units": d.Catalog.All()})
	}
}
