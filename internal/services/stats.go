package services

import (
	"context"
	"log"

	"github.com/wn-marie/mood-journal/internal/models"
	"github.com/wn-marie/mood-journal/internal/store"
)

// StatsCacheKey is the cache key for the aggregated stats response.
const StatsCacheKey = "stats:overview"

// trendLimit bounds the recent-entries projection used for charting.
const trendLimit = 10

// TrendPoint is one recent entry reduced to what the mood chart needs.
type TrendPoint struct {
	Date    string  `json:"date"`
	Score   float64 `json:"score"`
	Emotion string  `json:"emotion"`
}

// Stats is the aggregate view over all stored entries.
type Stats struct {
	EmotionCounts map[string]int `json:"emotion_counts"`
	TrendData     []TrendPoint   `json:"trend_data"`
	TotalEntries  int            `json:"total_entries"`
}

// StatsService computes emotion frequencies and the recent-entries trend.
type StatsService struct {
	store store.EntryStore
	cache *CacheService
}

// NewStatsService wires the aggregator. store and cache may be nil.
func NewStatsService(entryStore store.EntryStore, cache *CacheService) *StatsService {
	return &StatsService{store: entryStore, cache: cache}
}

// ComputeStats fetches all entries and aggregates them. Entries keep the
// order the store returned them in; the trend takes the first ten.
func (s *StatsService) ComputeStats(ctx context.Context) (Stats, error) {
	if s.cache != nil {
		var cached Stats
		if hit, err := s.cache.Get(StatsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var entries []models.JournalEntry
	if s.store != nil {
		var err error
		entries, err = s.store.All(ctx)
		if err != nil {
			return Stats{}, err
		}
	}

	counts := make(map[string]int)
	for _, e := range entries {
		emotion := e.EmotionLabel
		if emotion == "" {
			emotion = "neutral"
		}
		counts[emotion]++
	}

	recent := entries
	if len(recent) > trendLimit {
		recent = recent[:trendLimit]
	}
	trend := make([]TrendPoint, 0, len(recent))
	for _, e := range recent {
		point := TrendPoint{
			Score:   e.SentimentScore,
			Emotion: e.EmotionLabel,
		}
		if !e.CreatedAt.IsZero() {
			point.Date = e.CreatedAt.Format("2006-01-02")
		}
		// Legacy rows without analysis metadata chart as neutral midpoints.
		if point.Emotion == "" {
			point.Emotion = "neutral"
		}
		if point.Score == 0 {
			point.Score = 0.5
		}
		trend = append(trend, point)
	}

	stats := Stats{
		EmotionCounts: counts,
		TrendData:     trend,
		TotalEntries:  len(entries),
	}

	if s.cache != nil {
		if err := s.cache.Set(StatsCacheKey, stats); err != nil {
			log.Printf("Failed to cache stats: %v", err)
		}
	}

	return stats, nil
}
