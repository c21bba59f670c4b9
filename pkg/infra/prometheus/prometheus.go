package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trusttag_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trusttag_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	CollaboratorCalls = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trusttag_collaborator_calls_total",
			Help: "Calls made to external generative collaborators",
		},
		[]string{"collaborator", "outcome"}, // outcome: success | unavailable | parse_error
	)

	CollaboratorLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trusttag_collaborator_latency_ms",
			Help:    "External collaborator latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"collaborator"},
	)

	FallbackTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trusttag_fallback_total",
			Help: "Results served from a fallback value",
		},
		[]string{"component", "reason"},
	)

	TaggedAssets = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "trusttag_tagged_assets_total",
			Help: "Assets that went through the tagging pipeline",
		},
	)
)

type MetricsConfig struct {
	EnableLatency bool
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Gatherer exposes the private registry to the metrics endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
