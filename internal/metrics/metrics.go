package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barcost_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barcost_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "barcost_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Business metrics
var (
	RecipesResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barcost_recipes_resolved_total",
			Help: "Total number of recipe cost resolutions computed",
		},
	)

	ReportCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barcost_report_cache_hits_total",
			Help: "Total number of cost reports served from the cache",
		},
	)

	UnresolvedLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barcost_unresolved_lines_total",
			Help: "Total number of recipe lines that failed to resolve, by status",
		},
		[]string{"status"},
	)

	SnapshotReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barcost_snapshot_reloads_total",
			Help: "Total number of catalog and recipe book snapshot reloads",
		},
	)

	DepletionsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barcost_depletions_applied_total",
			Help: "Total number of sales depletion runs applied",
		},
	)
)
