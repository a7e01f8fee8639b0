package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnvelope(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	data := Payload{
		"id":          "pix_char_123",
		"amount":      1000.0,
		"platformFee": 50.0,
		"status":      "PAID",
		"brCode":      "xyz",
	}

	env := BuildEnvelope(data, KindPix, EventPixPaymentCompleted, now)

	// Raw fields spread at the top level, untouched.
	assert.Equal(t, "pix_char_123", env["id"])
	assert.Equal(t, 1000.0, env["amount"])
	assert.Equal(t, "PAID", env["status"])

	assert.Equal(t, EventPixPaymentCompleted, env["event"])
	assert.Equal(t, "pix", env["resourceType"])
	assert.Equal(t, "2026-03-14T15:09:26Z", env["timestamp"])

	payment, ok := env["payment"].(map[string]any)
	require.True(t, ok, "pix enrichment nests under payment")
	amounts := payment["amounts"].(map[string]any)
	assert.Equal(t, "9.50", amounts["netReais"])
}

func TestBuildEnvelopeDoesNotMutateData(t *testing.T) {
	data := Payload{"status": "PAID"}
	env := BuildEnvelope(data, KindPix, EventPixPaymentCompleted, time.Now())

	env["status"] = "TAMPERED"
	env["extra"] = true
	assert.Equal(t, Payload{"status": "PAID"}, data)
}

func TestBuildEnvelopeUnknownKindHasNoEnrichment(t *testing.T) {
	env := BuildEnvelope(Payload{"foo": "bar"}, KindUnknown, "unknown", time.Now())

	assert.Equal(t, "bar", env["foo"])
	assert.Equal(t, "unknown", env["event"])
	assert.Equal(t, "unknown", env["resourceType"])
	_, hasKey := env["unknown"]
	assert.False(t, hasKey)
}

func TestBuildEnvelopeTimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, 1, 2, 0, 30, 0, 0, loc)

	env := BuildEnvelope(Payload{}, KindCustomer, EventCustomerCreated, now)
	assert.Equal(t, "2026-01-02T03:30:00Z", env["timestamp"])
}
