// Package credentials authenticates requests to the X API.
//
// A client holds exactly one Credentials value, either a BearerToken (app-only
// auth) or OAuthKeys (OAuth 1.0a user context). New turns it into an
// Authenticator whose single capability is producing the Authorization header
// value for a request:
//
//	auth, err := credentials.New(credentials.BearerToken("AAAA..."))
//	value, err := auth.Sign(req) // "Bearer AAAA..."
//
// OAuth signatures bind the method, absolute URL and a fresh nonce/timestamp,
// so Sign must be called again for every request, including each redirect hop.
package credentials
