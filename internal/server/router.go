package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pixgate-systems/pixgate/internal/handlers"
	"github.com/pixgate-systems/pixgate/internal/middleware"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

// NewRouter constructs a ServeMux with the webhook API routes
// registered: the unified endpoint, one scoped endpoint per resource,
// probes and metrics.
func NewRouter(h *handlers.WebhookHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/webhooks/abacatepay", h.HandleUnified)
	for _, kind := range webhook.Kinds() {
		mux.HandleFunc("/webhooks/abacatepay/"+string(kind), h.Resource(kind))
	}

	// Health endpoints
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/readyz", h.Ready)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.RequestID(mux)
}
