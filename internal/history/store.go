// internal/history/store.go
package history

import (
	"context"
	"time"

	"globalmind/internal/models"
)

// Record is one processed query's stats row. Raw query text is kept for
// offline analysis of matching quality.
type Record struct {
	RequestID        string
	Query            string
	Language         models.Language
	Intent           models.IntentLabel
	Confidence       float64
	ProcessingTimeMs float64
	CulturalMatches  int
	RealWorldUsed    bool
	CreatedAt        time.Time
}

// Aggregates feeds the federation status endpoint.
type Aggregates struct {
	TotalQueries          int64            `json:"total_queries_processed"`
	AverageAccuracy       float64          `json:"average_accuracy"`
	CulturalRelevance     float64          `json:"cultural_relevance"`
	AverageResponseTimeMs float64          `json:"average_response_time"`
	QueriesByLanguage     map[string]int64 `json:"queries_by_language"`
}

// Store persists query stats. Implementations must be safe for concurrent
// use; Add must never block query processing for long.
type Store interface {
	Add(ctx context.Context, rec Record) error
	Aggregates(ctx context.Context) (*Aggregates, error)
	Close() error
}
