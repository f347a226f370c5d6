package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"

	"golang.org/x/net/http/httpguts"

	"github.com/kbukum/xapi/errors"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"
	headerUserAgent     = "User-Agent"

	contentTypeJSON = "application/json; charset=utf-8"
	acceptJSON      = "application/json"
)

var supportedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodDelete: {},
}

// checkMethod rejects anything but GET, POST, PUT and DELETE. The match is
// case-sensitive.
func checkMethod(method string) error {
	if _, ok := supportedMethods[method]; !ok {
		return errors.UnsupportedMethod(method)
	}
	return nil
}

// checkHeaders rejects names and values the transport would refuse or that
// could smuggle extra header lines.
func checkHeaders(h http.Header) error {
	for name, values := range h {
		if !httpguts.ValidHeaderFieldName(name) {
			return errors.InvalidRequest(fmt.Sprintf("invalid header name %q", name))
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return errors.InvalidRequest(fmt.Sprintf("invalid value for header %q", name))
			}
		}
	}
	return nil
}

// resolve joins path onto the base URL. Relative paths extend the base,
// paths starting with "/" replace its path, absolute URLs replace it.
func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, errors.InvalidRequest(fmt.Sprintf("invalid path %q", path)).WithCause(err)
	}
	u := c.base.ResolveReference(ref)
	if !isHTTPScheme(u.Scheme) || u.Host == "" {
		return nil, errors.InvalidRequest(fmt.Sprintf("path %q does not resolve to an http(s) URL", path))
	}
	return u, nil
}

// buildRequest turns one hop into a signed *http.Request. Header layers are
// applied in order: client defaults, configured headers, Content-Type for a
// body, caller headers, and finally Authorization.
func (c *Client) buildRequest(ctx context.Context, h hop, headers http.Header) (*http.Request, error) {
	var body io.Reader
	if h.body != nil && h.method != http.MethodGet {
		body = bytes.NewReader(h.body)
	}

	req, err := http.NewRequestWithContext(ctx, h.method, h.url.String(), body)
	if err != nil {
		return nil, errors.InvalidRequest(fmt.Sprintf("build %s %s", h.method, h.url)).WithCause(err)
	}

	req.Header.Set(headerUserAgent, c.config.UserAgent)
	req.Header.Set(headerAccept, acceptJSON)
	for _, k := range slices.Sorted(maps.Keys(c.config.Headers)) {
		req.Header.Set(k, c.config.Headers[k])
	}
	if body != nil && req.Header.Get(headerContentType) == "" && headers.Get(headerContentType) == "" {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	for k, values := range headers {
		req.Header.Del(k)
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	req.Header.Del(headerAuthorization)
	authorization, err := c.config.Auth.Sign(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: sign %s %s: %w", h.method, h.url, err)
	}
	req.Header.Set(headerAuthorization, authorization)
	return req, nil
}
