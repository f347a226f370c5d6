// Package errors defines the failure taxonomy of the X API client.
//
// Every failure the client produces itself is an *Error carrying an ErrorCode.
// Package-level sentinels (ErrAuthentication, ErrTooManyRedirects, ...) match
// any *Error with the same code, so callers can use the standard library:
//
//	if errors.Is(err, xerrors.ErrTooManyRedirects) { ... }
//
// Transport failures (connection refused, TLS handshake) are returned as-is by
// the client and are never converted into an *Error.
package errors
