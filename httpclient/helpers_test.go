package httpclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/kbukum/xapi/credentials"
)

// signer produces an Authorization value bound to the method and URL, so a
// stale header from a previous hop is detectable.
var signer = credentials.AuthenticatorFunc(func(r *http.Request) (string, error) {
	return "Sig " + r.Method + " " + r.URL.String(), nil
})

type received struct {
	Method        string
	URL           string
	Authorization string
	ContentType   string
	Body          string
	Header        http.Header
}

// recorder is an httptest server that records every request it receives
// and delegates the response to handler.
type recorder struct {
	*httptest.Server
	mu   sync.Mutex
	reqs []received
}

func newRecorder(t *testing.T, handler http.HandlerFunc) *recorder {
	t.Helper()
	rec := &recorder{}
	rec.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, received{
			Method:        r.Method,
			URL:           "http://" + r.Host + r.URL.RequestURI(),
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          string(body),
			Header:        r.Header.Clone(),
		})
		rec.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(rec.Close)
	return rec
}

func (r *recorder) requests() []received {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]received(nil), r.reqs...)
}

func newTestClient(t *testing.T, baseURL string, opts ...func(*Config)) *Client {
	t.Helper()
	cfg := Config{BaseURL: baseURL, Auth: signer}
	for _, opt := range opts {
		opt(&cfg)
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func maxRedirects(n int) func(*Config) {
	return func(c *Config) { c.MaxRedirects = &n }
}

func assertSigned(t *testing.T, r received) {
	t.Helper()
	want := "Sig " + r.Method + " " + r.URL
	if r.Authorization != want {
		t.Errorf("Authorization = %q, want %q", r.Authorization, want)
	}
}
