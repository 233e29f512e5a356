package handlers

import (
	"net/http"
	"time"
)

// HealthResponse reports liveness.
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns a liveness check handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	}
}
