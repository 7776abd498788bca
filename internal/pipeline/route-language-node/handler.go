// internal/pipeline/route-language-node/handler.go
package routelanguagenode

import (
	"context"
	stderrors "errors"
	"time"

	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/common/metrics"
	"globalmind/internal/models"
	"globalmind/internal/nodes"
)

const StageName = "route-language-node"

type Handler struct {
	registry *nodes.Registry
	timeout  time.Duration
	logger   logger.Logger
}

func NewHandler(registry *nodes.Registry, timeout time.Duration, log logger.Logger) *Handler {
	return &Handler{
		registry: registry,
		timeout:  timeout,
		logger: log.With(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

// Resolve picks the node for a query. An explicit requested language always
// wins over detection; a language with no registered node is a caller error.
func (h *Handler) Resolve(query models.Query, detected models.Language) (nodes.Node, error) {
	target := detected
	if query.RequestedLanguage != nil {
		target = *query.RequestedLanguage
	}

	if !target.Valid() {
		return nil, errors.NewUnsupportedLanguageError(string(target), supportedNames())
	}
	node, ok := h.registry.Resolve(target)
	if !ok {
		return nil, errors.NewUnsupportedLanguageError(string(target), supportedNames())
	}
	return node, nil
}

// Dispatch runs the node under its own timeout. Node failures and timeouts
// surface as NODE_UNAVAILABLE / NODE_TIMEOUT so the caller can degrade
// instead of failing the query.
func (h *Handler) Dispatch(ctx context.Context, node nodes.Node, req *nodes.Request) (*models.NodeResult, error) {
	nodeCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	result, err := node.Process(nodeCtx, req)
	elapsed := time.Since(start)

	if err != nil {
		h.logger.Warn("node dispatch failed", map[string]interface{}{
			"node_id":     node.ID(),
			"duration_ms": elapsed.Milliseconds(),
			"error":       err.Error(),
		})
		if stderrors.Is(err, context.DeadlineExceeded) {
			metrics.NodeDispatchFailures.WithLabelValues(node.ID(), string(errors.ErrCodeNodeTimeout)).Inc()
			return nil, errors.NewNodeTimeoutError(node.ID())
		}
		metrics.NodeDispatchFailures.WithLabelValues(node.ID(), string(errors.ErrCodeNodeUnavailable)).Inc()
		return nil, errors.NewNodeUnavailableError(node.ID(), err)
	}

	h.logger.Debug("node dispatch completed", map[string]interface{}{
		"node_id":     node.ID(),
		"duration_ms": elapsed.Milliseconds(),
	})
	return result, nil
}

func supportedNames() []string {
	langs := models.SupportedLanguages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}
	return names
}
