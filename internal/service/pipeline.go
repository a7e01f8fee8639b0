// Package service glues the pure webhook core into the
// extract -> authenticate -> classify -> normalize -> filter -> enrich
// flow shared by every endpoint.
package service

import (
	"context"
	"net/http"
	"time"

	"github.com/pixgate-systems/pixgate/internal/forwarder"
	"github.com/pixgate-systems/pixgate/internal/logging"
	"github.com/pixgate-systems/pixgate/internal/metrics"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

// Suppression reasons reported back in the acknowledgement.
const (
	ReasonAuthFailed       = "auth_failed"
	ReasonNotSubscribed    = "not_subscribed"
	ReasonResourceMismatch = "resource_mismatch"
)

// Result is the outcome of processing one delivery. A suppressed result
// still acknowledges receipt; it only skips the downstream workflow.
type Result struct {
	Forwarded bool
	Reason    string
	Kind      webhook.Kind
	Event     string
	Envelope  webhook.Envelope
}

// Pipeline processes webhook deliveries. It holds only configuration and
// collaborators; every delivery is classified from scratch, with no
// state carried between requests.
type Pipeline struct {
	auth webhook.AuthConfig
	subs webhook.Subscriptions
	sink forwarder.Sink
	log  *logging.Logger
	now  func() time.Time
}

// New builds a Pipeline. A nil sink disables forwarding side effects.
func New(auth webhook.AuthConfig, subs webhook.Subscriptions, sink forwarder.Sink, log *logging.Logger) *Pipeline {
	if sink == nil {
		sink = forwarder.NoOpSink{}
	}
	if log == nil {
		log = logging.Default()
	}
	return &Pipeline{
		auth: auth,
		subs: subs,
		sink: sink,
		log:  log,
		now:  time.Now,
	}
}

// Process runs one delivery through the pipeline. scope restricts the
// delivery to one resource kind (the per-resource endpoints);
// webhook.KindUnknown means unscoped classification.
func (p *Pipeline) Process(ctx context.Context, headers http.Header, body map[string]any, scope webhook.Kind) Result {
	if !webhook.Authenticate(p.auth, headers) {
		metrics.SuppressedTotal.WithLabelValues(ReasonAuthFailed).Inc()
		return Result{Reason: ReasonAuthFailed}
	}

	started := p.now()
	data, hint := webhook.Extract(body)

	var kind webhook.Kind
	if scope != webhook.KindUnknown {
		if !webhook.MatchesScope(scope, data) {
			metrics.SuppressedTotal.WithLabelValues(ReasonResourceMismatch).Inc()
			return Result{Reason: ReasonResourceMismatch, Kind: scope}
		}
		kind = scope
	} else {
		kind = webhook.Classify(data)
	}
	metrics.ClassificationsTotal.WithLabelValues(string(kind)).Inc()

	event := webhook.Normalize(kind, data, hint)

	if !p.subs.Allows(event) {
		metrics.SuppressedTotal.WithLabelValues(ReasonNotSubscribed).Inc()
		p.log.DebugContext(ctx, "delivery not subscribed",
			logging.Resource(string(kind)),
			logging.Event(event),
		)
		return Result{Reason: ReasonNotSubscribed, Kind: kind, Event: event}
	}

	envelope := webhook.BuildEnvelope(data, kind, event, p.now())
	metrics.NormalizationDuration.Observe(p.now().Sub(started).Seconds())

	if err := p.sink.Publish(ctx, event, envelope); err != nil {
		// A sink failure must not turn into a gateway-visible error;
		// the acknowledgement stands.
		metrics.ForwardErrors.Inc()
		p.log.ErrorContext(ctx, "downstream publish failed",
			logging.Event(event),
			logging.Err(err),
		)
	}

	return Result{
		Forwarded: true,
		Kind:      kind,
		Event:     event,
		Envelope:  envelope,
	}
}
