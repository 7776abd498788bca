// internal/pipeline/coordinator.go
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/common/metrics"
	"globalmind/internal/history"
	"globalmind/internal/models"
	"globalmind/internal/nodes"
	classifyintent "globalmind/internal/pipeline/classify-intent"
	detectlanguage "globalmind/internal/pipeline/detect-language"
	enrichrealworld "globalmind/internal/pipeline/enrich-real-world"
	matchculturalcontext "globalmind/internal/pipeline/match-cultural-context"
	routelanguagenode "globalmind/internal/pipeline/route-language-node"
	synthesizeresponse "globalmind/internal/pipeline/synthesize-response"
)

// fallbackConfidence applies when the language node failed and a generic
// answer stands in for its result.
const fallbackConfidence = 0.3

// Coordinator runs one query through the full pipeline: detection, cultural
// matching and intent classification in sequence, then node dispatch and
// real-world enrichment in parallel, then synthesis.
type Coordinator struct {
	detect     *detectlanguage.Handler
	match      *matchculturalcontext.Handler
	classify   *classifyintent.Handler
	route      *routelanguagenode.Handler
	enrich     *enrichrealworld.Handler
	synthesize *synthesizeresponse.Handler
	store      history.Store
	logger     logger.Logger
}

func NewCoordinator(
	detect *detectlanguage.Handler,
	match *matchculturalcontext.Handler,
	classify *classifyintent.Handler,
	route *routelanguagenode.Handler,
	enrich *enrichrealworld.Handler,
	synthesize *synthesizeresponse.Handler,
	store history.Store,
	log logger.Logger,
) *Coordinator {
	return &Coordinator{
		detect:     detect,
		match:      match,
		classify:   classify,
		route:      route,
		enrich:     enrich,
		synthesize: synthesize,
		store:      store,
		logger:     log.With(map[string]interface{}{"component": "coordinator"}),
	}
}

// Process handles a single query end to end. Caller errors (empty query,
// unsupported language) surface before any external call is made; node and
// search failures degrade instead of failing the query.
func (c *Coordinator) Process(ctx context.Context, requestID string, query models.Query) (*models.ResponseEnvelope, error) {
	start := time.Now()
	metrics.ActiveQueries.Inc()
	defer metrics.ActiveQueries.Dec()

	log := c.logger.With(map[string]interface{}{"request_id": requestID})

	detected, err := c.runDetect(ctx, query)
	if err != nil {
		c.recordFailure(err)
		return nil, err
	}

	matched := c.runMatch(ctx, query, detected.Result)
	intent := c.runClassify(ctx, query, matched.Matches)

	// resolve before spawning work so an unsupported language never
	// triggers a billable search
	node, err := c.route.Resolve(query, detected.Result.DetectedLanguage)
	if err != nil {
		c.recordFailure(err)
		return nil, err
	}

	nodeReq := &nodes.Request{
		Query:            query,
		Detection:        detected.Result,
		Intent:           intent.Intent,
		IntentConfidence: intent.Confidence,
		Matches:          matched.Matches,
	}

	var (
		wg         sync.WaitGroup
		nodeResult *models.NodeResult
		nodeErr    error
		enriched   *enrichrealworld.Output
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stageStart := time.Now()
		nodeResult, nodeErr = c.route.Dispatch(ctx, node, nodeReq)
		metrics.StageDuration.WithLabelValues(routelanguagenode.StageName).Observe(time.Since(stageStart).Seconds())
	}()
	go func() {
		defer wg.Done()
		stageStart := time.Now()
		enriched = c.enrich.Execute(ctx, &enrichrealworld.Input{
			Query:    query,
			Language: detected.Result.DetectedLanguage,
		})
		metrics.StageDuration.WithLabelValues(enrichrealworld.StageName).Observe(time.Since(stageStart).Seconds())
	}()
	wg.Wait()

	if nodeErr != nil {
		log.Warn("language node failed, using fallback result", map[string]interface{}{
			"node_id": node.ID(),
			"error":   nodeErr.Error(),
		})
		nodeResult = fallbackResult(node.ID(), detected.Result, intent.Intent, query)
	}

	synthesized, err := c.synthesize.Execute(ctx, &synthesizeresponse.Input{
		NodeResult: nodeResult,
		Matches:    matched.Matches,
		RealWorld:  enriched.Data,
	})
	if err != nil {
		c.recordFailure(err)
		return nil, err
	}

	elapsed := time.Since(start)
	envelope := &models.ResponseEnvelope{
		Query:            query.RawText,
		DetectedLanguage: detected.Result.DetectedLanguage,
		ProcessingTimeMs: float64(elapsed.Microseconds()) / 1000.0,
		Timestamp:        time.Now().UTC(),
		Response:         synthesized.Body,
	}

	metrics.QueriesProcessed.WithLabelValues(
		string(envelope.DetectedLanguage), string(envelope.Response.Intent)).Inc()
	metrics.PipelineDuration.WithLabelValues(string(envelope.DetectedLanguage)).Observe(elapsed.Seconds())

	c.recordHistory(ctx, requestID, envelope, len(matched.Matches), enriched.Data != nil, log)

	log.Info("query processed", map[string]interface{}{
		"language":      string(envelope.DetectedLanguage),
		"intent":        string(envelope.Response.Intent),
		"confidence":    envelope.Response.Confidence,
		"duration_ms":   envelope.ProcessingTimeMs,
		"degraded_node": nodeErr != nil,
	})

	return envelope, nil
}

func (c *Coordinator) runDetect(ctx context.Context, query models.Query) (*detectlanguage.Output, error) {
	stageStart := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues(detectlanguage.StageName).Observe(time.Since(stageStart).Seconds())
	}()
	return c.detect.Execute(ctx, &detectlanguage.Input{Query: query})
}

func (c *Coordinator) runMatch(ctx context.Context, query models.Query, detection models.LanguageDetectionResult) *matchculturalcontext.Output {
	stageStart := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues(matchculturalcontext.StageName).Observe(time.Since(stageStart).Seconds())
	}()
	out, _ := c.match.Execute(ctx, &matchculturalcontext.Input{Query: query, Detection: detection})
	return out
}

func (c *Coordinator) runClassify(ctx context.Context, query models.Query, matches []models.CulturalMatch) *classifyintent.Output {
	stageStart := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues(classifyintent.StageName).Observe(time.Since(stageStart).Seconds())
	}()
	out, _ := c.classify.Execute(ctx, &classifyintent.Input{Query: query, Matches: matches})
	return out
}

func (c *Coordinator) recordFailure(err error) {
	code := "INTERNAL"
	if stdErr, ok := errors.AsStandardError(err); ok {
		code = string(stdErr.Code)
	}
	metrics.QueriesFailed.WithLabelValues(code).Inc()
}

func (c *Coordinator) recordHistory(ctx context.Context, requestID string, env *models.ResponseEnvelope, culturalMatches int, realWorldUsed bool, log logger.Logger) {
	if c.store == nil {
		return
	}
	err := c.store.Add(ctx, history.Record{
		RequestID:        requestID,
		Query:            env.Query,
		Language:         env.DetectedLanguage,
		Intent:           env.Response.Intent,
		Confidence:       env.Response.Confidence,
		ProcessingTimeMs: env.ProcessingTimeMs,
		CulturalMatches:  culturalMatches,
		RealWorldUsed:    realWorldUsed,
		CreatedAt:        env.Timestamp,
	})
	if err != nil {
		log.Warn("history write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// fallbackResult is the generic answer used when the selected node could
// not produce one. It is clearly marked so callers can tell degraded
// responses apart.
func fallbackResult(nodeID string, detection models.LanguageDetectionResult, intent models.IntentLabel, query models.Query) *models.NodeResult {
	return &models.NodeResult{
		NodeID: fmt.Sprintf("%s-fallback", nodeID),
		Intent: intent,
		Payload: models.NewGeneralResponsePayload(models.GeneralResponsePayload{
			Content:    fmt.Sprintf("A full answer for %q is temporarily unavailable.", query.RawText),
			Suggestion: "Please try again in a moment.",
		}),
		ScriptInfo: detection,
		Confidence: fallbackConfidence,
	}
}
