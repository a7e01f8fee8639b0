package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/pixgate-systems/pixgate/internal/httputil"
	"github.com/pixgate-systems/pixgate/internal/logging"
	"github.com/pixgate-systems/pixgate/internal/metrics"
	"github.com/pixgate-systems/pixgate/internal/ratelimit"
	"github.com/pixgate-systems/pixgate/internal/service"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

// WebhookResponse is the acknowledgement returned for every delivery.
// Suppressed deliveries are still HTTP 200: an auth failure or an
// unsubscribed event must not look like a delivery error the gateway
// should retry.
type WebhookResponse struct {
	Status     string           `json:"status"`
	DeliveryID string           `json:"deliveryId,omitempty"`
	Suppressed bool             `json:"suppressed,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Event      webhook.Envelope `json:"event,omitempty"`
}

const reasonRateLimited = "rate_limited"

// WebhookHandler serves the unified and per-resource webhook endpoints.
type WebhookHandler struct {
	pipeline    *service.Pipeline
	limiter     ratelimit.RateLimiter
	log         *logging.Logger
	maxBodySize int64
}

// NewWebhookHandler builds a handler. A nil limiter disables rate
// limiting; maxBodySize <= 0 disables the body cap.
func NewWebhookHandler(pipeline *service.Pipeline, limiter ratelimit.RateLimiter, log *logging.Logger, maxBodySize int64) *WebhookHandler {
	if limiter == nil {
		limiter = &ratelimit.NoOpRateLimiter{}
	}
	if log == nil {
		log = logging.Default()
	}
	return &WebhookHandler{
		pipeline:    pipeline,
		limiter:     limiter,
		log:         log,
		maxBodySize: maxBodySize,
	}
}

// HandleUnified serves POST /webhooks/abacatepay: the payload is
// classified across all five resource kinds.
func (h *WebhookHandler) HandleUnified(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, webhook.KindUnknown, "unified")
}

// Resource returns the handler for a per-resource endpoint. Payloads
// that do not look like the scoped resource are suppressed.
func (h *WebhookHandler) Resource(kind webhook.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.handle(w, r, kind, string(kind))
	}
}

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request, scope webhook.Kind, endpoint string) {
	if r.Method != http.MethodPost {
		httputil.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sourceIP := httputil.GetClientIP(r)

	allowed, err := h.limiter.Allow(r.Context(), sourceIP)
	if err != nil {
		// Limiter trouble should not drop deliveries.
		h.log.WarnContext(r.Context(), "rate limiter unavailable", logging.Err(err))
		allowed = true
	}
	if !allowed {
		metrics.DeliveriesTotal.WithLabelValues(endpoint, "suppressed").Inc()
		httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
			Status:     "ok",
			Suppressed: true,
			Reason:     reasonRateLimited,
		})
		return
	}

	reader := io.Reader(r.Body)
	if h.maxBodySize > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	defer r.Body.Close()

	metrics.DeliveryBytesTotal.Add(float64(len(body)))

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.DeliveriesTotal.WithLabelValues(endpoint, "invalid").Inc()
		httputil.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := h.pipeline.Process(r.Context(), r.Header, payload, scope)

	if !result.Forwarded {
		metrics.DeliveriesTotal.WithLabelValues(endpoint, "suppressed").Inc()
		h.log.InfoContext(r.Context(), "delivery suppressed",
			logging.IP(sourceIP),
			logging.Resource(string(result.Kind)),
			logging.Reason(result.Reason),
		)
		httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
			Status:     "ok",
			Suppressed: true,
			Reason:     result.Reason,
		})
		return
	}

	deliveryID := uuid.New().String()
	metrics.DeliveriesTotal.WithLabelValues(endpoint, "forwarded").Inc()
	h.log.InfoContext(r.Context(), "delivery forwarded",
		logging.IP(sourceIP),
		logging.Resource(string(result.Kind)),
		logging.Event(result.Event),
		logging.DeliveryID(deliveryID),
	)

	httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
		Status:     "ok",
		DeliveryID: deliveryID,
		Event:      result.Envelope,
	})
}

// Health serves liveness probes.
func (h *WebhookHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready serves readiness probes.
func (h *WebhookHandler) Ready(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
