package logging

import "log/slog"

// Common field names so log lines stay queryable across the service.
const (
	FieldService  = "service"
	FieldIP       = "ip"
	FieldMethod   = "method"
	FieldPath     = "path"
	FieldStatus   = "status"
	FieldDuration = "duration_ms"
	FieldError    = "error"
	FieldResource = "resource"
	FieldEvent    = "event"
	FieldReason   = "reason"
	FieldDelivery = "delivery_id"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// IP returns a slog attribute for the client IP address.
func IP(ip string) slog.Attr {
	return slog.String(FieldIP, ip)
}

// Resource returns a slog attribute for the classified resource kind.
func Resource(kind string) slog.Attr {
	return slog.String(FieldResource, kind)
}

// Event returns a slog attribute for the canonical event name.
func Event(event string) slog.Attr {
	return slog.String(FieldEvent, event)
}

// Reason returns a slog attribute for a suppression reason.
func Reason(reason string) slog.Attr {
	return slog.String(FieldReason, reason)
}

// DeliveryID returns a slog attribute for the delivery identifier.
func DeliveryID(id string) slog.Attr {
	return slog.String(FieldDelivery, id)
}

// Err returns a slog attribute for an error value.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}
