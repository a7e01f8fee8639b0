package webhook

import "strings"

// Normalize maps a classified payload's status fields onto one canonical
// lifecycle event. Each resource has its own ordered status table; a
// payload matching no row falls through to the resource's default. The
// unknown kind passes the raw hint through verbatim.
//
// PIX statuses CANCELLED and FAILED both normalize to
// pix.payment.failed; the gateway reports a cancelled charge and a
// failed charge through the same terminal transition.
func Normalize(kind Kind, data Payload, hint string) string {
	switch kind {
	case KindPix:
		return normalizePix(data, hint)
	case KindBilling:
		return normalizeBilling(data)
	case KindCustomer:
		return normalizeCustomer(hint)
	case KindCoupon:
		return normalizeCoupon(data, hint)
	case KindWithdraw:
		return normalizeWithdraw(data)
	}
	return hint
}

func normalizePix(data Payload, hint string) string {
	switch data.str("status") {
	case "PAID":
		return EventPixPaymentCompleted
	case "EXPIRED":
		return EventPixPaymentExpired
	case "CANCELLED", "FAILED":
		return EventPixPaymentFailed
	case "PENDING":
		return EventPixQRCodeCreated
	}
	return hint
}

func normalizeBilling(data Payload) string {
	switch data.str("status") {
	case "PAID":
		return EventBillingPaid
	case "EXPIRED":
		return EventBillingExpired
	case "CANCELLED":
		return EventBillingCancelled
	}
	return EventBillingCreated
}

func normalizeCustomer(hint string) string {
	if strings.Contains(hint, "update") || strings.Contains(hint, "edit") {
		return EventCustomerUpdated
	}
	return EventCustomerCreated
}

func normalizeCoupon(data Payload, hint string) string {
	if data.str("status") == "EXPIRED" {
		return EventCouponExpired
	}
	if strings.Contains(hint, "redeem") || strings.Contains(hint, "used") {
		return EventCouponRedeemed
	}
	return EventCouponCreated
}

func normalizeWithdraw(data Payload) string {
	switch data.str("status") {
	case "COMPLETE":
		return EventWithdrawCompleted
	case "CANCELLED", "FAILED":
		return EventWithdrawFailed
	}
	return EventWithdrawCreated
}
