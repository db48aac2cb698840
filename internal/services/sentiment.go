package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// DefaultProvider is the ai_provider recorded when our own adapter ran the
// analysis (as opposed to emotion metadata supplied by the client).
const DefaultProvider = "huggingface"

// DefaultModelURLs are the candidate classification endpoints, tried in order.
// The emotion model comes first for richer labels; the sentiment models are
// fallbacks when it is unavailable.
var DefaultModelURLs = []string{
	// Emotions: joy, sadness, anger, fear, disgust, surprise, neutral
	"https://api-inference.huggingface.co/models/j-hartmann/emotion-english-distilroberta-base",
	// Sentiment: positive/neutral/negative
	"https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment-latest",
	// Sentiment (binary): POSITIVE/NEGATIVE
	"https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english",
}

// SentimentResult is the canonical outcome of classifying one piece of text.
type SentimentResult struct {
	EmotionLabel   string  `json:"emotion_label"`
	SentimentScore float64 `json:"sentiment_score"`
}

// Classifier derives an emotion label and confidence score for free text.
// Implementations are total: they return a usable result even when every
// upstream call fails.
type Classifier interface {
	Classify(ctx context.Context, text string) SentimentResult
}

// HuggingFaceClassifier tries the candidate hosted models in priority order
// and stops at the first one that yields a usable prediction.
type HuggingFaceClassifier struct {
	apiKey     string
	modelURLs  []string
	httpClient *http.Client
}

// NewHuggingFaceClassifier builds a classifier over the given candidate model
// URLs. An empty slice means the default candidates.
func NewHuggingFaceClassifier(apiKey string, modelURLs []string) *HuggingFaceClassifier {
	if len(modelURLs) == 0 {
		modelURLs = DefaultModelURLs
	}
	return &HuggingFaceClassifier{
		apiKey:    apiKey,
		modelURLs: modelURLs,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends the text to each candidate model until one returns a usable
// prediction. If every candidate fails it returns the neutral fallback, so
// callers never have to handle an error.
func (c *HuggingFaceClassifier) Classify(ctx context.Context, text string) SentimentResult {
	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return SentimentResult{EmotionLabel: "neutral", SentimentScore: 0.5}
	}

	for _, url := range c.modelURLs {
		if result, ok := c.query(ctx, url, payload); ok {
			return result
		}
	}

	// Fallback if all models fail
	return SentimentResult{EmotionLabel: "neutral", SentimentScore: 0.5}
}

func (c *HuggingFaceClassifier) query(ctx context.Context, url string, payload []byte) (SentimentResult, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return SentimentResult{}, false
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Sentiment request error for %s: %v", url, err)
		return SentimentResult{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Sentiment model %s returned status %d", url, resp.StatusCode)
		return SentimentResult{}, false
	}

	var predictions [][]prediction
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		log.Printf("Sentiment response decode error for %s: %v", url, err)
		return SentimentResult{}, false
	}

	return pickBest(predictions)
}

// pickBest selects the highest-scoring pair from the first inner sequence.
// Ties keep the first pair encountered.
func pickBest(predictions [][]prediction) (SentimentResult, bool) {
	if len(predictions) == 0 || len(predictions[0]) == 0 {
		return SentimentResult{}, false
	}

	best := predictions[0][0]
	for _, p := range predictions[0][1:] {
		if p.Score > best.Score {
			best = p
		}
	}

	return SentimentResult{
		EmotionLabel:   NormalizeLabel(best.Label),
		SentimentScore: best.Score,
	}, true
}
