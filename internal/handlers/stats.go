package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/wn-marie/mood-journal/internal/services"
)

type StatsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	services.Stats
}

// GetStats returns emotion counts and the recent mood trend for charting.
func GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := statsService.ComputeStats(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, StatsResponse{
			Success: false,
			Message: "Failed to compute stats",
		})
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		Success: true,
		Stats:   stats,
	})
}
