package xapi

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/kbukum/xapi/credentials"
)

const testBearerToken = "TEST_BEARER_TOKEN"

var testOAuthKeys = credentials.OAuthKeys{
	APIKey:            "TEST_API_KEY",
	APIKeySecret:      "TEST_API_KEY_SECRET",
	AccessToken:       "TEST_ACCESS_TOKEN",
	AccessTokenSecret: "TEST_ACCESS_TOKEN_SECRET",
}

// authModes are the two credential kinds every behavioural test runs under.
var authModes = []struct {
	name string
	cfg  func(baseURL string) Config
}{
	{"bearer", func(baseURL string) Config {
		return Config{BaseURL: baseURL, BearerToken: testBearerToken}
	}},
	{"oauth", func(baseURL string) Config {
		return Config{
			BaseURL:           baseURL,
			APIKey:            testOAuthKeys.APIKey,
			APIKeySecret:      testOAuthKeys.APIKeySecret,
			AccessToken:       testOAuthKeys.AccessToken,
			AccessTokenSecret: testOAuthKeys.AccessTokenSecret,
		}
	}},
}

type received struct {
	Method        string
	Path          string
	URL           string
	Authorization string
	ContentType   string
	Body          string
	Header        http.Header
	// SignatureOK reports whether an OAuth Authorization header verified
	// against the URL this request actually hit.
	SignatureOK bool
}

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
			Path:          r.URL.Path,
			URL:           "http://" + r.Host + r.URL.RequestURI(),
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          string(body),
			Header:        r.Header.Clone(),
			SignatureOK:   verifyOAuth(r, testOAuthKeys),
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

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newClient(t *testing.T, cfg Config) *Client {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// assertAuthorized checks the Authorization header of r for the given mode.
func assertAuthorized(t *testing.T, mode string, r received) {
	t.Helper()
	switch mode {
	case "bearer":
		if r.Authorization != "Bearer "+testBearerToken {
			t.Errorf("Authorization = %q, want bearer token", r.Authorization)
		}
	case "oauth":
		if !strings.HasPrefix(r.Authorization, "OAuth ") {
			t.Errorf("Authorization = %q, want OAuth header", r.Authorization)
		}
		if !r.SignatureOK {
			t.Errorf("OAuth signature does not verify for %s %s", r.Method, r.URL)
		}
	}
}

var oauthParam = regexp.MustCompile(`(oauth_\w+)="([^"]*)"`)

// verifyOAuth recomputes the HMAC-SHA1 signature of r (RFC 5849) and compares
// it with the one in its Authorization header.
func verifyOAuth(r *http.Request, keys credentials.OAuthKeys) bool {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "OAuth ") {
		return false
	}

	var signature string
	params := map[string][]string{}
	for _, m := range oauthParam.FindAllStringSubmatch(header, -1) {
		v, err := url.PathUnescape(m[2])
		if err != nil {
			return false
		}
		if m[1] == "oauth_signature" {
			signature = v
			continue
		}
		params[m[1]] = append(params[m[1]], v)
	}
	for k, vs := range r.URL.Query() {
		params[k] = append(params[k], vs...)
	}

	pairs := make([]string, 0, len(params))
	for k, vs := range params {
		for _, v := range vs {
			pairs = append(pairs, percentEncode(k)+"="+percentEncode(v))
		}
	}
	sort.Strings(pairs)

	base := strings.Join([]string{
		r.Method,
		percentEncode("http://" + strings.ToLower(r.Host) + r.URL.EscapedPath()),
		percentEncode(strings.Join(pairs, "&")),
	}, "&")
	key := percentEncode(keys.APIKeySecret) + "&" + percentEncode(keys.AccessTokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)) == signature
}

func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
