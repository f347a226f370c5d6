package xapi

import (
	"maps"
	"net/http"
	"slices"

	"github.com/kbukum/xapi/decode"
)

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	headers     http.Header
	objectShape decode.ObjectShape
	arrayShape  decode.ArrayShape
}

// WithHeader sets a request header for this call. Authorization cannot be
// overridden.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		o.headers.Set(key, value)
	}
}

// WithHeaders sets several request headers for this call. Keys are applied
// in sorted order, so when two keys name the same header the one sorting
// last wins.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		for _, k := range slices.Sorted(maps.Keys(headers)) {
			WithHeader(k, headers[k])(o)
		}
	}
}

// WithObjectShape overrides the object decode shape for this call.
func WithObjectShape(s decode.ObjectShape) CallOption {
	return func(o *callOptions) { o.objectShape = s }
}

// WithArrayShape overrides the array decode shape for this call.
func WithArrayShape(s decode.ArrayShape) CallOption {
	return func(o *callOptions) { o.arrayShape = s }
}
