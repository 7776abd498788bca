// internal/pipeline/synthesize-response/handler.go
package synthesizeresponse

import (
	"context"
	"strings"

	"globalmind/internal/common/logger"
	"globalmind/internal/models"
)

const StageName = "synthesize-response"

const (
	realWorldBonus   = 0.2
	richResultsBonus = 0.1
	richResultsMin   = 3
)

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.With(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

type Input struct {
	NodeResult *models.NodeResult
	Matches    []models.CulturalMatch
	RealWorld  *models.RealWorldData
}

type Output struct {
	Body models.ResponseBody
}

// Execute merges the node result with enrichment into the final response
// body. Merging is pure: same inputs always produce the same body, and the
// node payload is upgraded rather than mutated.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	node := input.NodeResult

	confidence := node.Confidence
	if input.RealWorld != nil {
		confidence += realWorldBonus
		if len(input.RealWorld.SearchResults) >= richResultsMin {
			confidence += richResultsBonus
		}
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	payload := node.Payload
	if input.RealWorld != nil {
		if len(input.Matches) > 0 {
			payload = h.enhancedCultural(node, input.RealWorld, confidence)
		} else {
			payload = h.realWorldOnly(node, input.RealWorld)
		}
	}

	body := models.ResponseBody{
		Intent:          node.Intent,
		Confidence:      confidence,
		Script:          node.ScriptInfo.PrimaryScript,
		NodeID:          node.NodeID,
		CulturalContext: input.Matches,
		RealWorldData:   input.RealWorld,
		Payload:         payload,
	}

	h.logger.Debug("response synthesized", map[string]interface{}{
		"intent":     string(body.Intent),
		"confidence": body.Confidence,
		"payload":    string(payload.Kind),
	})

	return &Output{Body: body}, nil
}

func (h *Handler) enhancedCultural(node *models.NodeResult, rw *models.RealWorldData, confidence float64) models.ResponsePayload {
	return models.NewEnhancedCulturalPayload(models.EnhancedCulturalPayload{
		CulturalIntroduction: payloadIntroduction(node.Payload),
		MainContent:          mainContent(rw),
		PracticalAdvice:      payloadAdvice(node.Payload),
		AdditionalResources:  resourceLinks(rw.SearchResults),
		ConfidenceLevel:      confidenceLevel(confidence),
	})
}

func (h *Handler) realWorldOnly(node *models.NodeResult, rw *models.RealWorldData) models.ResponsePayload {
	return models.NewRealWorldResponsePayload(models.RealWorldResponsePayload{
		Introduction:        payloadIntroduction(node.Payload),
		MainContent:         mainContent(rw),
		PracticalAdvice:     payloadAdvice(node.Payload),
		AdditionalResources: resourceLinks(rw.SearchResults),
	})
}

// payloadIntroduction lifts the lead text out of whichever variant the node
// produced.
func payloadIntroduction(p models.ResponsePayload) string {
	switch {
	case p.CulturalGuide != nil:
		return p.CulturalGuide.Title
	case p.HealthcareAdvice != nil:
		return p.HealthcareAdvice.Condition
	case p.General != nil:
		return p.General.Content
	}
	return ""
}

func payloadAdvice(p models.ResponsePayload) string {
	switch {
	case p.CulturalGuide != nil:
		return strings.Join(p.CulturalGuide.TraditionalPractices, ", ")
	case p.HealthcareAdvice != nil:
		return strings.Join(p.HealthcareAdvice.TraditionalRemedies, ", ")
	case p.General != nil:
		return p.General.Suggestion
	}
	return ""
}

func mainContent(rw *models.RealWorldData) string {
	if rw.AISummary != nil && rw.AISummary.SummaryText != "" {
		return rw.AISummary.SummaryText
	}
	snippets := make([]string, 0, len(rw.SearchResults))
	for _, doc := range rw.SearchResults {
		snippets = append(snippets, doc.Snippet)
	}
	return strings.Join(snippets, " ")
}

func resourceLinks(docs []models.SearchDocument) []models.ResourceLink {
	links := make([]models.ResourceLink, len(docs))
	for i, doc := range docs {
		links[i] = models.ResourceLink{
			Title:   doc.Title,
			Link:    doc.Link,
			Source:  doc.Source,
			Snippet: doc.Snippet,
		}
	}
	return links
}

func confidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return "high"
	case confidence >= 0.7:
		return "medium"
	default:
		return "low"
	}
}
