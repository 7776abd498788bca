// internal/pipeline/enrich-real-world/handler.go
package enrichrealworld

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"globalmind/internal/common/logger"
	"globalmind/internal/common/metrics"
	"globalmind/internal/knowledge"
	"globalmind/internal/models"
)

const StageName = "enrich-real-world"

// Cache is the subset of the redis wrapper the stage needs. A nil Cache
// disables caching without changing behavior.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Handler struct {
	config     *Config
	provider   SearchProvider
	cache      Cache
	summarizer *Summarizer
	sem        chan struct{}
	logger     logger.Logger
}

func NewHandler(config *Config, provider SearchProvider, cache Cache, summarizer *Summarizer, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		provider:   provider,
		cache:      cache,
		summarizer: summarizer,
		sem:        make(chan struct{}, config.MaxConcurrent),
		logger: log.With(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

type Input struct {
	Query    models.Query
	Language models.Language
}

type Output struct {
	Data *models.RealWorldData
}

// Execute fetches and summarizes real-world context for the query. Every
// failure mode degrades to an absent result; the pipeline never fails
// because enrichment did.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	if h.provider == nil {
		return &Output{}
	}

	key := cacheKey(input.Language, input.Query.RawText)
	if data := h.fromCache(ctx, key); data != nil {
		metrics.SearchCacheHits.WithLabelValues("hit").Inc()
		return &Output{Data: data}
	}
	metrics.SearchCacheHits.WithLabelValues("miss").Inc()

	// the semaphore bounds concurrent calls against a billable provider
	select {
	case h.sem <- struct{}{}:
		defer func() { <-h.sem }()
	case <-ctx.Done():
		h.logger.Warn("enrichment skipped, request context done", map[string]interface{}{
			"language": string(input.Language),
		})
		return &Output{}
	}

	searchCtx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	docs, err := h.provider.Search(searchCtx, input.Query.RawText, input.Language, h.config.MaxResults)
	if err != nil {
		metrics.SearchRequests.WithLabelValues(h.provider.Name(), "error").Inc()
		h.logger.Warn("search provider failed, degrading", map[string]interface{}{
			"provider": h.provider.Name(),
			"error":    err.Error(),
		})
		return &Output{}
	}
	metrics.SearchRequests.WithLabelValues(h.provider.Name(), "ok").Inc()

	if len(docs) == 0 {
		return &Output{}
	}

	data := &models.RealWorldData{
		SearchResults: docs,
		AISummary:     h.summarizer.Summarize(ctx, input.Query.RawText, input.Language, docs),
	}

	h.toCache(ctx, key, data)
	return &Output{Data: data}
}

func (h *Handler) fromCache(ctx context.Context, key string) *models.RealWorldData {
	if h.cache == nil {
		return nil
	}
	raw, err := h.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return nil
	}

	var data models.RealWorldData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		h.logger.Warn("dropping undecodable cache entry", map[string]interface{}{
			"key": key,
		})
		return nil
	}
	if len(data.SearchResults) == 0 {
		return nil
	}
	return &data
}

func (h *Handler) toCache(ctx context.Context, key string, data *models.RealWorldData) {
	if h.cache == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, string(raw), h.config.CacheTTL); err != nil {
		h.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func cacheKey(lang models.Language, rawText string) string {
	return fmt.Sprintf("rw:%s:%s", lang, knowledge.Normalize(rawText))
}
