// Package webhook implements the classification and enrichment core for
// AbacatePay gateway callbacks.
//
// Every function in this package is pure and total over JSON object
// inputs: arbitrary well-formed payloads map to exactly one outcome and
// never to an error. Malformed or missing fields degrade to empty values
// inside enrichment rather than failing the delivery.
package webhook

// Payload is the raw JSON object delivered by the gateway, after the
// optional "data" wrapper has been unwrapped.
type Payload map[string]any

// Extract pulls the resource payload and the raw event hint out of a
// decoded request body. The gateway sometimes nests the resource one
// level under "data" and names the event under "event", "action" or
// "type" (first present string wins).
func Extract(body map[string]any) (Payload, string) {
	if body == nil {
		return Payload{}, "unknown"
	}

	data := Payload(body)
	if nested, ok := body["data"].(map[string]any); ok && nested != nil {
		data = Payload(nested)
	}

	hint := "unknown"
	for _, key := range []string{"event", "action", "type"} {
		if s, ok := body[key].(string); ok {
			hint = s
			break
		}
	}

	return data, hint
}

// str returns the field as a string, or "" when absent or not a string.
func (p Payload) str(key string) string {
	s, _ := p[key].(string)
	return s
}

// num returns the field as a float64, or 0 when absent or not numeric.
// JSON numbers decode as float64 in untyped maps.
func (p Payload) num(key string) float64 {
	n, _ := p[key].(float64)
	return n
}

// exists reports whether the key is present at all, null included.
// Zero and empty string count as present.
func (p Payload) exists(key string) bool {
	_, ok := p[key]
	return ok
}

// present reports whether the field carries a usable value. The gateway
// omits fields, sends them as null, or sends empty strings
// interchangeably, so absence means nil, false, "" or numeric zero.
func (p Payload) present(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	}
	return true
}
