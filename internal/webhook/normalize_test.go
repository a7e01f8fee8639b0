package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePix(t *testing.T) {
	tests := []struct {
		name   string
		status string
		hint   string
		want   string
	}{
		{"paid", "PAID", "billing.paid", EventPixPaymentCompleted},
		{"expired", "EXPIRED", "", EventPixPaymentExpired},
		{"cancelled maps to failed", "CANCELLED", "", EventPixPaymentFailed},
		{"failed", "FAILED", "", EventPixPaymentFailed},
		{"pending is qr code creation", "PENDING", "", EventPixQRCodeCreated},
		{"unrecognized status falls back to hint", "PROCESSING", "pix.custom", "pix.custom"},
		{"no status falls back to hint", "", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Payload{}
			if tt.status != "" {
				data["status"] = tt.status
			}
			assert.Equal(t, tt.want, Normalize(KindPix, data, tt.hint))
		})
	}
}

func TestNormalizeBilling(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"PAID", EventBillingPaid},
		{"EXPIRED", EventBillingExpired},
		{"CANCELLED", EventBillingCancelled},
		{"PENDING", EventBillingCreated},
		{"", EventBillingCreated},
	}

	for _, tt := range tests {
		data := Payload{}
		if tt.status != "" {
			data["status"] = tt.status
		}
		assert.Equal(t, tt.want, Normalize(KindBilling, data, "ignored"), "status %q", tt.status)
	}
}

func TestNormalizeCustomer(t *testing.T) {
	assert.Equal(t, EventCustomerUpdated, Normalize(KindCustomer, Payload{}, "customer.updated"))
	assert.Equal(t, EventCustomerUpdated, Normalize(KindCustomer, Payload{}, "edit"))
	assert.Equal(t, EventCustomerCreated, Normalize(KindCustomer, Payload{}, "customer.created"))
	assert.Equal(t, EventCustomerCreated, Normalize(KindCustomer, Payload{}, ""))
}

func TestNormalizeCoupon(t *testing.T) {
	assert.Equal(t, EventCouponExpired, Normalize(KindCoupon, Payload{"status": "EXPIRED"}, ""))
	assert.Equal(t, EventCouponRedeemed, Normalize(KindCoupon, Payload{}, "coupon.redeem"))
	assert.Equal(t, EventCouponRedeemed, Normalize(KindCoupon, Payload{}, "used"))
	assert.Equal(t, EventCouponCreated, Normalize(KindCoupon, Payload{}, ""))
	// Status table outranks the hint.
	assert.Equal(t, EventCouponExpired, Normalize(KindCoupon, Payload{"status": "EXPIRED"}, "redeem"))
}

func TestNormalizeWithdraw(t *testing.T) {
	assert.Equal(t, EventWithdrawCompleted, Normalize(KindWithdraw, Payload{"status": "COMPLETE"}, ""))
	assert.Equal(t, EventWithdrawFailed, Normalize(KindWithdraw, Payload{"status": "CANCELLED"}, ""))
	assert.Equal(t, EventWithdrawFailed, Normalize(KindWithdraw, Payload{"status": "FAILED"}, ""))
	assert.Equal(t, EventWithdrawCreated, Normalize(KindWithdraw, Payload{"status": "PENDING"}, ""))
	assert.Equal(t, EventWithdrawCreated, Normalize(KindWithdraw, Payload{}, ""))
}

func TestNormalizeUnknownPassesHintThrough(t *testing.T) {
	assert.Equal(t, "some.event", Normalize(KindUnknown, Payload{"status": "PAID"}, "some.event"))
	assert.Equal(t, "unknown", Normalize(KindUnknown, Payload{}, "unknown"))
}

// Same payload always normalizes to the same event.
func TestNormalizeDeterministic(t *testing.T) {
	data := Payload{"status": "PAID", "amount": 1000.0, "brCode": "x"}
	first := Normalize(KindPix, data, "unknown")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Normalize(KindPix, data, "unknown"))
	}
}

// Every normalized event for a recognized kind is either in that kind's
// canonical vocabulary or the raw hint passed through on fallback.
func TestNormalizeStaysInVocabulary(t *testing.T) {
	const hint = "unknown"
	statuses := []string{"PAID", "EXPIRED", "CANCELLED", "FAILED", "PENDING", "COMPLETE", "ACTIVE", ""}
	for _, kind := range Kinds() {
		vocab := map[string]bool{hint: true}
		for _, e := range EventsFor(kind) {
			vocab[e] = true
		}
		for _, status := range statuses {
			event := Normalize(kind, Payload{"status": status}, hint)
			assert.True(t, vocab[event], "kind %s status %q produced %q", kind, status, event)
		}
	}
}
