// internal/pipeline/match-cultural-context/handler.go
package matchculturalcontext

import (
	"context"

	"globalmind/internal/common/logger"
	"globalmind/internal/knowledge"
	"globalmind/internal/models"
)

const StageName = "match-cultural-context"

type Handler struct {
	base   *knowledge.Base
	logger logger.Logger
}

func NewHandler(base *knowledge.Base, log logger.Logger) *Handler {
	return &Handler{
		base: base,
		logger: log.With(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

type Input struct {
	Query     models.Query
	Detection models.LanguageDetectionResult
}

type Output struct {
	Matches []models.CulturalMatch
}

// Execute resolves cultural entities mentioned in the query. Zero matches
// is a normal outcome and never an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	matches := h.base.Match(input.Query.RawText)

	h.logger.Debug("cultural context matched", map[string]interface{}{
		"matches":  len(matches),
		"language": string(input.Detection.DetectedLanguage),
	})

	return &Output{Matches: matches}, nil
}
