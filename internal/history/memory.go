// internal/history/memory.go
package history

import (
	"context"
	"sync"
)

// MemoryStore keeps running aggregates in process memory. Used when
// history persistence is disabled; individual records are not retained.
type MemoryStore struct {
	mu sync.Mutex

	total          int64
	confidenceSum  float64
	culturalHits   int64
	responseTimeMs float64
	byLanguage     map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byLanguage: make(map[string]int64),
	}
}

func (s *MemoryStore) Add(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.confidenceSum += rec.Confidence
	s.responseTimeMs += rec.ProcessingTimeMs
	if rec.CulturalMatches > 0 {
		s.culturalHits++
	}
	s.byLanguage[string(rec.Language)]++
	return nil
}

func (s *MemoryStore) Aggregates(ctx context.Context) (*Aggregates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := &Aggregates{
		TotalQueries:      s.total,
		QueriesByLanguage: make(map[string]int64, len(s.byLanguage)),
	}
	for lang, n := range s.byLanguage {
		agg.QueriesByLanguage[lang] = n
	}
	if s.total > 0 {
		agg.AverageAccuracy = s.confidenceSum / float64(s.total)
		agg.CulturalRelevance = float64(s.culturalHits) / float64(s.total)
		agg.AverageResponseTimeMs = s.responseTimeMs / float64(s.total)
	}
	return agg, nil
}

func (s *MemoryStore) Close() error { return nil }
