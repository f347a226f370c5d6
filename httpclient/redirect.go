package httpclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/kbukum/xapi/errors"
)

// hop is the state of one send within a call.
type hop struct {
	method string
	url    *url.URL
	body   []byte
	// count is the number of redirects followed to reach this hop.
	count int
}

// isRedirect reports whether status is followed by the dispatcher.
func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

// next computes the hop that follows a redirect response.
//
// 303 switches to GET and drops the body. 301, 302, 307 and 308 keep the
// method and body. The Location header is resolved against the current URL.
func (h hop) next(resp *http.Response, maxRedirects int) (hop, error) {
	loc := resp.Header.Get("Location")
	if loc == "" {
		return hop{}, errors.MalformedRedirect(resp.StatusCode, h.url.String(), "missing Location header")
	}
	ref, err := url.Parse(loc)
	if err != nil {
		return hop{}, errors.MalformedRedirect(resp.StatusCode, h.url.String(),
			fmt.Sprintf("invalid Location header %q", loc)).WithCause(err)
	}
	target := h.url.ResolveReference(ref)
	if !isHTTPScheme(target.Scheme) || target.Host == "" {
		return hop{}, errors.MalformedRedirect(resp.StatusCode, h.url.String(),
			fmt.Sprintf("Location %q is not an http(s) URL", loc))
	}

	count := h.count + 1
	if count > maxRedirects {
		return hop{}, errors.TooManyRedirects(maxRedirects, target.String())
	}

	next := hop{method: h.method, url: target, body: h.body, count: count}
	if resp.StatusCode == http.StatusSeeOther {
		next.method = http.MethodGet
		next.body = nil
	}
	return next, nil
}
