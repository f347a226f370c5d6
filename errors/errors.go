package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error is the structured client error.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// StatusCode is the HTTP status of the terminal response (0 when no response is involved).
	StatusCode int `json:"status_code,omitempty"`
	// Status is the HTTP status line text, e.g. "404 Not Found".
	Status string `json:"status,omitempty"`
	// Body is the raw body of the terminal response, if any.
	Body []byte `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Sentinels for use with errors.Is. They match any *Error with the same code.
var (
	ErrConfiguration      = &Error{Code: ErrCodeConfiguration}
	ErrUnsupportedMethod  = &Error{Code: ErrCodeUnsupportedMethod}
	ErrInvalidRequest     = &Error{Code: ErrCodeInvalidRequest}
	ErrMalformedRedirect  = &Error{Code: ErrCodeMalformedRedirect}
	ErrTooManyRedirects   = &Error{Code: ErrCodeTooManyRedirects}
	ErrAuthentication     = &Error{Code: ErrCodeAuthentication}
	ErrServer             = &Error{Code: ErrCodeServer}
	ErrUnexpectedResponse = &Error{Code: ErrCodeUnexpectedResponse}
	ErrDecode             = &Error{Code: ErrCodeDecode}
)

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Constructors ---

// Configuration creates an error for missing or inconsistent configuration.
func Configuration(message string) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: message}
}

// UnsupportedMethod creates an error for a method the client does not dispatch.
func UnsupportedMethod(method string) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedMethod,
		Message: fmt.Sprintf("Unsupported HTTP method: %s", method),
		Details: map[string]any{"method": method},
	}
}

// InvalidRequest creates an error for a request that cannot be built.
func InvalidRequest(reason string) *Error {
	return &Error{Code: ErrCodeInvalidRequest, Message: reason}
}

// MalformedRedirect creates an error for a redirect response without a usable Location.
func MalformedRedirect(statusCode int, url, reason string) *Error {
	return &Error{
		Code:       ErrCodeMalformedRedirect,
		Message:    fmt.Sprintf("Malformed redirect from %s: %s", url, reason),
		StatusCode: statusCode,
		Details:    map[string]any{"url": url},
	}
}

// TooManyRedirects creates an error for a redirect chain longer than max.
func TooManyRedirects(max int, url string) *Error {
	return &Error{
		Code:    ErrCodeTooManyRedirects,
		Message: fmt.Sprintf("Too many redirects (max %d), last location %s", max, url),
		Details: map[string]any{"max_redirects": max, "url": url},
	}
}

// Authentication creates an error for a 401 response.
func Authentication(status string, body []byte) *Error {
	return &Error{
		Code:       ErrCodeAuthentication,
		Message:    "Authentication failed. Please check your credentials.",
		StatusCode: http.StatusUnauthorized,
		Status:     status,
		Body:       body,
	}
}

// Server creates an error for a 5xx response.
func Server(statusCode int, status string, body []byte) *Error {
	return &Error{
		Code:       ErrCodeServer,
		Message:    "An internal server error occurred.",
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}
}

// UnexpectedResponse creates an error for any other non-success terminal response.
func UnexpectedResponse(statusCode int, status string, body []byte) *Error {
	return &Error{
		Code:       ErrCodeUnexpectedResponse,
		Message:    fmt.Sprintf("Unexpected response: %s", statusText(statusCode, status)),
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}
}

// Decode creates an error for a success response whose body failed to parse.
func Decode(cause error) *Error {
	return &Error{
		Code:    ErrCodeDecode,
		Message: "Failed to decode response body",
		Cause:   cause,
	}
}

// --- Inspection helpers ---

// As converts an error to an *Error if possible.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}

// IsAuthentication checks if an error is an authentication error.
func IsAuthentication(err error) bool { return CodeOf(err) == ErrCodeAuthentication }

// IsServer checks if an error is a server error.
func IsServer(err error) bool { return CodeOf(err) == ErrCodeServer }

// IsTooManyRedirects checks if an error is a redirect-limit error.
func IsTooManyRedirects(err error) bool { return CodeOf(err) == ErrCodeTooManyRedirects }

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool { return CodeOf(err) == ErrCodeConfiguration }

// statusText renders "<code> <message>" the way net/http formats Response.Status.
func statusText(code int, status string) string {
	if status != "" {
		return status
	}
	if text := http.StatusText(code); text != "" {
		return fmt.Sprintf("%d %s", code, text)
	}
	return fmt.Sprintf("%d", code)
}
