// Package forwarder delivers forwarded envelopes to a downstream
// consumer. The HTTP acknowledgement never depends on a sink: a publish
// failure is logged and counted, not surfaced to the gateway.
package forwarder

import (
	"context"
	"encoding/json"

	"github.com/pixgate-systems/pixgate/internal/logging"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

// Sink receives forwarded envelopes keyed by their canonical event.
type Sink interface {
	Publish(ctx context.Context, event string, envelope webhook.Envelope) error
	Close() error
}

// NoOpSink discards envelopes. Used when forwarding is disabled: the
// webhook response itself is the only output.
type NoOpSink struct{}

func (NoOpSink) Publish(ctx context.Context, event string, envelope webhook.Envelope) error {
	return nil
}

func (NoOpSink) Close() error { return nil }

// LogSink writes forwarded envelopes to the structured log. Useful in
// development and as a fallback when NATS is unreachable.
type LogSink struct {
	Logger *logging.Logger
}

func (s *LogSink) Publish(ctx context.Context, event string, envelope webhook.Envelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	log := s.Logger
	if log == nil {
		log = logging.Default()
	}
	resource, _ := envelope["resourceType"].(string)
	log.InfoContext(ctx, "forwarded envelope",
		logging.Event(event),
		logging.Resource(resource),
	)
	log.DebugContext(ctx, "envelope body", "payload", string(data))
	return nil
}

func (s *LogSink) Close() error { return nil }
