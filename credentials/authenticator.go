package credentials

import (
	"net/http"

	"github.com/kbukum/xapi/errors"
)

// Authenticator produces the Authorization header value for a request.
// Implementations must be safe for concurrent use.
type Authenticator interface {
	Sign(req *http.Request) (string, error)
}

// New returns the Authenticator for c.
func New(c Credentials) (Authenticator, error) {
	if c == nil {
		return nil, errors.Configuration("Missing OAuth credentials.")
	}
	return c.authenticator()
}

// Bearer presents a static bearer token.
type Bearer string

// Sign returns "Bearer <token>". The request is not inspected.
func (b Bearer) Sign(*http.Request) (string, error) {
	return "Bearer " + string(b), nil
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(req *http.Request) (string, error)

// Sign calls f(req).
func (f AuthenticatorFunc) Sign(req *http.Request) (string, error) {
	return f(req)
}
