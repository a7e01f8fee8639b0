package forwarder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/pixgate-systems/pixgate/internal/webhook"
)

// NATSConfig holds the JetStream sink configuration.
type NATSConfig struct {
	// URL is the NATS server URL (e.g. "nats://localhost:4222").
	URL string

	// SubjectPrefix is prepended to the canonical event to form the
	// publish subject, e.g. "pixgate.events" yields
	// "pixgate.events.pix.payment.completed".
	SubjectPrefix string

	// Stream is the JetStream stream name capturing the subjects.
	Stream string

	// Timeout is the connection timeout.
	Timeout time.Duration
}

// DefaultNATSConfig returns a NATSConfig with sensible defaults.
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           nats.DefaultURL,
		SubjectPrefix: "pixgate.events",
		Stream:        "PIXGATE_EVENTS",
		Timeout:       5 * time.Second,
	}
}

// NATSSink publishes forwarded envelopes to a JetStream stream so
// downstream consumers replay them independently of the gateway.
type NATSSink struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	prefix string
}

// NewNATSSink connects to NATS and ensures the envelope stream exists.
func NewNATSSink(ctx context.Context, cfg NATSConfig) (*NATSSink, error) {
	opts := []nats.Option{
		nats.Name("pixgate-forwarder"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.Timeout(cfg.Timeout),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.Stream,
		Subjects:  []string{cfg.SubjectPrefix + ".>"},
		MaxAge:    24 * time.Hour,
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create envelope stream: %w", err)
	}

	return &NATSSink{
		conn:   conn,
		js:     js,
		prefix: cfg.SubjectPrefix,
	}, nil
}

// Publish writes the envelope to the event's subject.
func (s *NATSSink) Publish(ctx context.Context, event string, envelope webhook.Envelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	subject := s.prefix + "." + event
	if _, err := s.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish envelope: %w", err)
	}
	return nil
}

// Close drains the connection.
func (s *NATSSink) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	return nil
}
