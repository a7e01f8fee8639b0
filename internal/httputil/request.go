package httputil

import (
	"net/http"
	"strings"
)

// GetClientIP extracts the real client IP from a request, looking through
// the usual proxy headers before falling back to the socket address:
//  1. X-Forwarded-For (first entry is the original client)
//  2. X-Real-IP
//  3. RemoteAddr
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
