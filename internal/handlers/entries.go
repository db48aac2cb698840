package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wn-marie/mood-journal/internal/models"
	"github.com/wn-marie/mood-journal/internal/services"
)

// CreateEntryRequest is the JSON body for POST /api/entries. Emotion metadata
// is optional; when label or score is missing the entry is analyzed first.
type CreateEntryRequest struct {
	Content          string   `json:"content"`
	EmotionLabel     *string  `json:"emotion_label"`
	SentimentScore   *float64 `json:"sentiment_score"`
	AIProvider       string   `json:"ai_provider"`
	DetailedAnalysis string   `json:"detailed_analysis"`
}

type CreateEntryResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	Persisted bool                 `json:"persisted"`
	Entry     *models.JournalEntry `json:"entry,omitempty"`
}

type GetEntriesResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Entries []models.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// CreateEntry creates a new journal entry, running sentiment analysis when
// the request carries no emotion metadata.
func CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateEntryResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := entryService.CreateEntry(ctx, services.CreateEntryInput{
		Content:          req.Content,
		EmotionLabel:     req.EmotionLabel,
		SentimentScore:   req.SentimentScore,
		AIProvider:       req.AIProvider,
		DetailedAnalysis: req.DetailedAnalysis,
	})
	if errors.Is(err, services.ErrEmptyContent) {
		writeJSON(w, http.StatusBadRequest, CreateEntryResponse{
			Success: false,
			Message: "Content is required",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateEntryResponse{
			Success: false,
			Message: "Failed to create entry",
		})
		return
	}

	message := "Entry created successfully"
	if !result.Persisted {
		message = "Entry analyzed but not persisted (no store configured)"
	}
	writeJSON(w, http.StatusCreated, CreateEntryResponse{
		Success:   true,
		Message:   message,
		Persisted: result.Persisted,
		Entry:     &result.Entry,
	})
}

// GetEntries returns all journal entries, newest first.
func GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := entryService.ListEntries(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetEntriesResponse{
			Success: false,
			Message: "Failed to fetch entries",
			Entries: []models.JournalEntry{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetEntriesResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	})
}

// DeleteEntry removes one journal entry by ID.
func DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Entry ID is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := entryService.DeleteEntry(ctx, id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Failed to delete entry",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Entry deleted successfully",
	})
}
