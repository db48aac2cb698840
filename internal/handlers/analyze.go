package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wn-marie/mood-journal/internal/services"
)

// AnalyzeRequest is the JSON body for POST /api/ai/analyze.
type AnalyzeRequest struct {
	Content string `json:"content"`
}

type AnalyzeResponse struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message,omitempty"`
	Analysis *services.AnalysisResult `json:"analysis,omitempty"`
}

// AnalyzeEmotion classifies content without saving it.
func AnalyzeEmotion(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	analysis, err := entryService.Analyze(ctx, req.Content)
	if errors.Is(err, services.ErrEmptyContent) {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{
			Success: false,
			Message: "Content is required",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AnalyzeResponse{
			Success: false,
			Message: "Analysis failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success:  true,
		Analysis: &analysis,
	})
}
