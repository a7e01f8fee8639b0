package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Delivery metrics
	DeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixgate_webhook_deliveries_total",
			Help: "Total webhook deliveries received, by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	DeliveryBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pixgate_webhook_delivery_bytes_total",
			Help: "Total bytes of webhook payloads received",
		},
	)

	// Classification metrics
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixgate_webhook_classifications_total",
			Help: "Payload classifications by resource kind",
		},
		[]string{"kind"},
	)

	NormalizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pixgate_webhook_pipeline_duration_seconds",
			Help:    "Duration of the classify/normalize/enrich pipeline in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Suppression metrics
	SuppressedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixgate_webhook_suppressed_total",
			Help: "Suppressed deliveries by reason",
		},
		[]string{"reason"},
	)

	// Forwarder metrics
	ForwardErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pixgate_forward_errors_total",
			Help: "Total downstream publish failures",
		},
	)

	// Rate limiting metrics
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixgate_rate_limit_hits_total",
			Help: "Total deliveries dropped by the rate limiter",
		},
		[]string{"source"},
	)
)
