package models

import "time"

// JournalEntry is a single mood journal entry together with the emotion
// metadata derived for it. EmotionLabel and SentimentScore are always set
// as a pair: either both come from the client or both come from analysis.
type JournalEntry struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Content          string    `json:"content"`
	SentimentScore   float64   `json:"sentiment_score"`
	EmotionLabel     string    `json:"emotion_label"`
	AIProvider       string    `json:"ai_provider"`
	DetailedAnalysis string    `json:"detailed_analysis"`
}
