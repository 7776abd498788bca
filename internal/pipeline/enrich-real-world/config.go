// internal/pipeline/enrich-real-world/config.go
package enrichrealworld

import (
	"time"

	"globalmind/internal/common/config"
)

type Config struct {
	Provider      string
	BaseURL       string
	APIKey        string
	EngineID      string
	Index         string
	Timeout       time.Duration
	MaxResults    int
	MaxConcurrent int
	CacheTTL      time.Duration
	SummarizerURL string
}

func FromSearchConfig(cfg config.SearchConfig) *Config {
	return &Config{
		Provider:      cfg.Provider,
		BaseURL:       cfg.BaseURL,
		APIKey:        cfg.APIKey,
		EngineID:      cfg.EngineID,
		Index:         cfg.Index,
		Timeout:       time.Duration(cfg.Timeout) * time.Millisecond,
		MaxResults:    cfg.MaxResults,
		MaxConcurrent: cfg.MaxConcurrent,
		CacheTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		SummarizerURL: cfg.SummarizerURL,
	}
}
