package handlers

import (
	"net/http"

	"github.com/ugmchurch/steeple/internal/httpserver/deps"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Health(_ deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Message: "Server is running",
		})
	}
}
