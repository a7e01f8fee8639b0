package webhook

// Canonical lifecycle events, one vocabulary per resource. These are the
// normalized names an operator subscribes to, independent of the raw
// status vocabulary the gateway sends.
const (
	EventPixPaymentCompleted = "pix.payment.completed"
	EventPixPaymentExpired   = "pix.payment.expired"
	EventPixPaymentFailed    = "pix.payment.failed"
	EventPixQRCodeCreated    = "pix.qrcode.created"

	EventBillingCreated   = "billing.created"
	EventBillingPaid      = "billing.paid"
	EventBillingExpired   = "billing.expired"
	EventBillingCancelled = "billing.cancelled"

	EventCustomerCreated = "customer.created"
	EventCustomerUpdated = "customer.updated"

	EventCouponCreated  = "coupon.created"
	EventCouponRedeemed = "coupon.redeemed"
	EventCouponExpired  = "coupon.expired"

	EventWithdrawCreated   = "withdraw.created"
	EventWithdrawCompleted = "withdraw.completed"
	EventWithdrawFailed    = "withdraw.failed"
)

var eventsByKind = map[Kind][]string{
	KindPix: {
		EventPixPaymentCompleted,
		EventPixPaymentExpired,
		EventPixPaymentFailed,
		EventPixQRCodeCreated,
	},
	KindBilling: {
		EventBillingCreated,
		EventBillingPaid,
		EventBillingExpired,
		EventBillingCancelled,
	},
	KindCustomer: {
		EventCustomerCreated,
		EventCustomerUpdated,
	},
	KindCoupon: {
		EventCouponCreated,
		EventCouponRedeemed,
		EventCouponExpired,
	},
	KindWithdraw: {
		EventWithdrawCreated,
		EventWithdrawCompleted,
		EventWithdrawFailed,
	},
}

// EventsFor returns the canonical events a resource kind can emit.
func EventsFor(kind Kind) []string {
	return append([]string(nil), eventsByKind[kind]...)
}

// AllEvents returns every canonical event across all resource kinds.
func AllEvents() []string {
	var all []string
	for _, kind := range Kinds() {
		all = append(all, eventsByKind[kind]...)
	}
	return all
}

// Subscriptions is the set of canonical events an operator has opted
// into. The empty set means no filtering: every event is forwarded.
type Subscriptions map[string]struct{}

// NewSubscriptions builds a subscription set from event names.
func NewSubscriptions(events ...string) Subscriptions {
	s := make(Subscriptions, len(events))
	for _, e := range events {
		s[e] = struct{}{}
	}
	return s
}

// Allows reports whether an event should be forwarded downstream.
func (s Subscriptions) Allows(event string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[event]
	return ok
}
