// internal/pipeline/classify-intent/handler.go
package classifyintent

import (
	"context"
	"strings"

	"globalmind/internal/common/logger"
	"globalmind/internal/knowledge"
	"globalmind/internal/models"
)

const StageName = "classify-intent"

const (
	healthMatchConfidence   = 0.85
	culturalMatchConfidence = 0.8
	policyMatchConfidence   = 0.7
	keywordConfidence       = 0.7
	baselineConfidence      = 0.6
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.With(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

type Input struct {
	Query   models.Query
	Matches []models.CulturalMatch
}

type Output struct {
	Intent     models.IntentLabel
	Confidence float64
}

// Execute assigns exactly one intent. Rules run in fixed order so the same
// query and matches always classify identically: the strongest cultural
// match decides first, keyword fallbacks second, general_response last.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	out := h.classify(input)

	h.logger.Debug("intent classified", map[string]interface{}{
		"intent":     string(out.Intent),
		"confidence": out.Confidence,
		"matches":    len(input.Matches),
	})

	return out, nil
}

func (h *Handler) classify(input *Input) *Output {
	// matches arrive sorted by confidence, ties broken by canonical name
	if len(input.Matches) > 0 {
		switch input.Matches[0].Category {
		case models.CategoryHealth:
			return &Output{Intent: models.IntentHealthcareAdvice, Confidence: healthMatchConfidence}
		case models.CategoryFestival, models.CategoryTradition, models.CategoryFood:
			return &Output{Intent: models.IntentCulturalGuide, Confidence: culturalMatchConfidence}
		case models.CategoryPolicy:
			return &Output{Intent: models.IntentGeneralResponse, Confidence: policyMatchConfidence}
		}
	}

	normalized := knowledge.Normalize(input.Query.RawText)
	if containsAny(normalized, h.config.HealthKeywords) {
		return &Output{Intent: models.IntentHealthcareAdvice, Confidence: keywordConfidence}
	}
	if containsAny(normalized, h.config.CulturalKeywords) {
		return &Output{Intent: models.IntentCulturalGuide, Confidence: keywordConfidence}
	}

	return &Output{Intent: models.IntentGeneralResponse, Confidence: baselineConfidence}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, knowledge.Normalize(kw)) {
			return true
		}
	}
	return false
}
