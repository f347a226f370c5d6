package httpclient

import (
	"net/http"
	"net/url"
)

// Request describes one logical call. It is consumed by Client.Do and may
// produce several hops when the server redirects.
type Request struct {
	// Method is GET, POST, PUT or DELETE.
	Method string
	// Path is resolved against Config.BaseURL. Absolute URLs pass through.
	Path string
	// Headers are per-call headers; they override client defaults but never
	// Authorization.
	Headers http.Header
	// Body is the raw request body. Nil means no body; GET ignores it.
	Body []byte
}

// Response is the terminal response of a call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the status line text, e.g. "404 Not Found".
	Status string
	// Headers are the response headers.
	Headers http.Header
	// Body is the full response body.
	Body []byte
	// URL is the effective URL of the hop that produced this response.
	URL *url.URL
	// Hops is the number of redirects followed.
	Hops int
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
