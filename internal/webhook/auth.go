package webhook

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// AuthMode selects how inbound deliveries are authenticated.
type AuthMode string

const (
	AuthNone   AuthMode = "none"
	AuthBasic  AuthMode = "basicAuth"
	AuthHeader AuthMode = "headerAuth"
)

// ParseAuthMode maps a string onto a recognized AuthMode. Unrecognized
// values fail closed: they authenticate nothing.
func ParseAuthMode(s string) (AuthMode, bool) {
	switch AuthMode(s) {
	case AuthNone, AuthBasic, AuthHeader, "":
		if s == "" {
			return AuthNone, true
		}
		return AuthMode(s), true
	}
	return AuthMode(s), false
}

// AuthConfig is the operator's webhook authentication setup. Exactly one
// mode is active; the mode's fields are the only ones consulted.
type AuthConfig struct {
	Mode        AuthMode
	Username    string
	Password    string
	HeaderName  string
	HeaderValue string
}

// Authenticate checks a delivery's headers against the configured mode.
// A failed check means the delivery is acknowledged but suppressed, never
// rejected with an error status: the gateway must not retry on our
// account.
func Authenticate(cfg AuthConfig, headers http.Header) bool {
	switch cfg.Mode {
	case AuthNone:
		return true

	case AuthBasic:
		auth := headers.Get("Authorization")
		if !strings.HasPrefix(auth, "Basic ") {
			return false
		}
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
		if err != nil {
			// Undecodable credentials are an auth failure, not a
			// server error.
			return false
		}
		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return false
		}
		return username == cfg.Username && password == cfg.Password

	case AuthHeader:
		value := headers.Get(cfg.HeaderName)
		return value != "" && value == cfg.HeaderValue
	}

	return false
}
