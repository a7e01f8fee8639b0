package webhook

import "time"

// Envelope is the enriched output emitted for a forwarded delivery: the
// raw payload fields spread at the top level, the canonical event, the
// resource kind, a generation timestamp and the resource-named derived
// object.
type Envelope map[string]any

// BuildEnvelope assembles the output envelope. The raw payload is copied,
// never mutated, and derived fields only appear for recognized kinds.
// now is passed in so envelope construction stays a pure function.
func BuildEnvelope(data Payload, kind Kind, event string, now time.Time) Envelope {
	env := make(Envelope, len(data)+4)
	for k, v := range data {
		env[k] = v
	}
	env["event"] = event
	env["resourceType"] = string(kind)
	env["timestamp"] = now.UTC().Format(time.RFC3339)

	if derived := Enrich(kind, data); derived != nil {
		env[EnrichmentKey(kind)] = derived
	}
	return env
}
