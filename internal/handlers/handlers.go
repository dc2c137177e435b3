// Package handlers contains the two static HTTP handlers of the web app.
// Neither reads the request; responses are byte-identical on every call.
package handlers

import (
	"encoding/json"
	"net/http"

	constants "github.com/Alarion239/devops-webapp/internal/constants"
	"github.com/Alarion239/devops-webapp/internal/logger"
)

type HealthResponse struct {
	Status string `json:"status"`
}

var (
	homeBody   = []byte(constants.HOME_PAGE_HTML)
	healthBody = mustMarshal(HealthResponse{Status: constants.HEALTH_STATUS_OK})
)

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Home serves the landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	write(w, r, constants.CONTENT_TYPE_HTML, homeBody)
}

// Health serves the liveness payload {"status":"healthy"}.
func Health(w http.ResponseWriter, r *http.Request) {
	write(w, r, constants.CONTENT_TYPE_JSON, healthBody)
}

func write(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.LogWarn("Failed to write response", "path", r.URL.Path, "error", err)
	}
}
