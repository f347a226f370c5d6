package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction and request-shape errors
const (
	// ErrCodeConfiguration indicates missing or inconsistent client configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeUnsupportedMethod indicates an HTTP method outside GET, POST, PUT and DELETE.
	ErrCodeUnsupportedMethod ErrorCode = "UNSUPPORTED_METHOD"
	// ErrCodeInvalidRequest indicates a request that cannot be put on the wire (bad header, bad URL).
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// Redirect errors
const (
	// ErrCodeMalformedRedirect indicates a redirect status without a usable Location header.
	ErrCodeMalformedRedirect ErrorCode = "MALFORMED_REDIRECT"
	// ErrCodeTooManyRedirects indicates the redirect chain exceeded the configured maximum.
	ErrCodeTooManyRedirects ErrorCode = "TOO_MANY_REDIRECTS"
)

// Terminal response errors
const (
	// ErrCodeAuthentication indicates a 401 response.
	ErrCodeAuthentication ErrorCode = "AUTHENTICATION"
	// ErrCodeServer indicates a 5xx response.
	ErrCodeServer ErrorCode = "SERVER_ERROR"
	// ErrCodeUnexpectedResponse indicates any other non-success terminal response.
	ErrCodeUnexpectedResponse ErrorCode = "UNEXPECTED_RESPONSE"
	// ErrCodeDecode indicates a success response whose body is not valid JSON.
	ErrCodeDecode ErrorCode = "DECODE"
)

// String returns the code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// FromResponse reports whether the code is produced from a terminal HTTP response.
func (c ErrorCode) FromResponse() bool {
	switch c {
	case ErrCodeAuthentication, ErrCodeServer, ErrCodeUnexpectedResponse:
		return true
	default:
		return false
	}
}
