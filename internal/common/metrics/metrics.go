// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_queries_processed_total",
			Help: "Total number of queries processed by the pipeline",
		},
		[]string{"language", "intent"},
	)

	QueriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_queries_failed_total",
			Help: "Total number of queries rejected or failed",
		},
		[]string{"error_code"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_pipeline_duration_seconds",
			Help: "End-to-end query processing duration in seconds",
		},
		[]string{"language"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_stage_duration_seconds",
			Help: "Per-stage processing duration in seconds",
		},
		[]string{"stage"},
	)

	NodeDispatchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_node_dispatch_failures_total",
			Help: "Total number of language node dispatch failures",
		},
		[]string{"node_id", "error_code"},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_search_requests_total",
			Help: "Total number of outbound search provider requests",
		},
		[]string{"provider", "status"},
	)

	SearchCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_search_cache_total",
			Help: "Search cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	ActiveQueries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_queries_active",
			Help: "Number of queries currently in flight",
		},
	)
)
