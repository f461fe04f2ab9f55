// internal/server/handlers/status.go

package handlers

import (
	"encoding/json"
	"net/http"

	"contentfactory/internal/domain/trend"
	"contentfactory/internal/service/factory"
)

// StatusProvider exposes the factory's read surface.
type StatusProvider interface {
	Status() factory.Status
	LatestTrends() trend.Summary
}

// StatusHandler handles factory status HTTP requests
type StatusHandler struct {
	provider StatusProvider
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(provider StatusProvider) *StatusHandler {
	return &StatusHandler{provider: provider}
}

// GetStatus returns the factory counters and last cycle report
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.provider.Status())
}

// GetLatestTrends returns the last cycle's trend summary
func (h *StatusHandler) GetLatestTrends(w http.ResponseWriter, r *http.Request) {
	trends := h.provider.LatestTrends()
	if trends.BestContentType == "" {
		respondWithError(w, http.StatusNotFound, "No cycle has completed yet", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, trends)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
