package webhook

import "strings"

// Kind identifies which of the five gateway resources a payload
// describes.
type Kind string

const (
	KindPix      Kind = "pix"
	KindBilling  Kind = "billing"
	KindCustomer Kind = "customer"
	KindCoupon   Kind = "coupon"
	KindWithdraw Kind = "withdraw"
	KindUnknown  Kind = "unknown"
)

// Kinds lists the recognized resource kinds, in classification order.
func Kinds() []Kind {
	return []Kind{KindPix, KindBilling, KindCustomer, KindCoupon, KindWithdraw}
}

// ParseKind maps a string onto a recognized Kind, or KindUnknown.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindPix, KindBilling, KindCustomer, KindCoupon, KindWithdraw:
		return Kind(s)
	}
	return KindUnknown
}

// Classify inspects a payload's field set and returns the resource kind
// it describes. The heuristics are evaluated in a fixed order and the
// first match wins: PIX carries brCode/brCodeBase64 or a "pix"-prefixed
// id, so it must be checked before the looser billing rules, which also
// accept amount/status payloads. Customer is the only conjunctive rule.
func Classify(data Payload) Kind {
	switch {
	case data.present("brCode") || data.present("brCodeBase64") ||
		(data.present("amount") && data.present("status") && strings.HasPrefix(data.str("id"), "pix")):
		return KindPix

	case data.present("url") || data.present("products") || data.present("returnUrl") ||
		data.present("completionUrl") || data.present("frequency"):
		return KindBilling

	case data.present("name") && data.present("email") && data.present("taxId") && data.present("cellphone"):
		return KindCustomer

	// Zero is a valid discount value, so coupon checks presence of the
	// key rather than a usable value.
	case data.present("code") && data.present("discountKind") && data.exists("discount"):
		return KindCoupon

	case data.present("method") && data.present("receiptUrl") && data.str("kind") == "WITHDRAW":
		return KindWithdraw
	}

	return KindUnknown
}

// scopeFields holds the any-of field sets a payload must satisfy to be
// accepted on a resource-scoped endpoint. Satisfying either set is
// enough; a key present with a null value still counts.
var scopeFields = map[Kind][][]string{
	KindPix:      {{"brCode", "amount", "status"}, {"id", "amount"}},
	KindBilling:  {{"url", "products"}, {"id", "status", "frequency"}},
	KindCustomer: {{"name", "email", "taxId", "cellphone"}},
	KindCoupon:   {{"code", "discountKind", "discount"}},
	KindWithdraw: {{"method", "receiptUrl", "kind"}, {"amount", "status", "id"}},
}

// MatchesScope reports whether a payload plausibly belongs to the given
// resource kind. Scoped endpoints use it to suppress deliveries for
// other resources without treating them as errors.
func MatchesScope(kind Kind, data Payload) bool {
	sets, ok := scopeFields[kind]
	if !ok {
		return true
	}
	for _, fields := range sets {
		for _, f := range fields {
			if data.exists(f) {
				return true
			}
		}
	}
	return false
}
