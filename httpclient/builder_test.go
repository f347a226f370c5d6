package httpclient

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"testing"

	"github.com/kbukum/xapi/credentials"
	"github.com/kbukum/xapi/errors"
)

func TestResolve(t *testing.T) {
	c := newTestClient(t, "https://api.twitter.com/2/")

	tests := []struct {
		path string
		want string
	}{
		{"tweets", "https://api.twitter.com/2/tweets"},
		{"tweets/20?expansions=author_id", "https://api.twitter.com/2/tweets/20?expansions=author_id"},
		{"users/by/username/x", "https://api.twitter.com/2/users/by/username/x"},
		{"/old_endpoint", "https://api.twitter.com/old_endpoint"},
		{"https://upload.twitter.com/1.1/media/upload.json", "https://upload.twitter.com/1.1/media/upload.json"},
		{"", "https://api.twitter.com/2/"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			u, err := c.resolve(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.String() != tt.want {
				t.Errorf("resolve(%q) = %s, want %s", tt.path, u, tt.want)
			}
		})
	}
}

func TestResolve_Invalid(t *testing.T) {
	c := newTestClient(t, "https://api.twitter.com/2/")
	for _, path := range []string{"%zz", "mailto:someone@example.com"} {
		if _, err := c.resolve(path); !stderrors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("resolve(%q): expected invalid request, got %v", path, err)
		}
	}
}

func TestCheckMethod(t *testing.T) {
	for _, m := range []string{"GET", "POST", "PUT", "DELETE"} {
		if err := checkMethod(m); err != nil {
			t.Errorf("%s: unexpected error %v", m, err)
		}
	}
	err := checkMethod("PATCH")
	if !stderrors.Is(err, errors.ErrUnsupportedMethod) {
		t.Fatalf("expected unsupported method, got %v", err)
	}
	if e, _ := errors.As(err); e.Message != "Unsupported HTTP method: PATCH" {
		t.Errorf("message = %q", e.Message)
	}
}

func TestCheckHeaders(t *testing.T) {
	tests := []struct {
		name    string
		h       http.Header
		wantErr bool
	}{
		{"nil", nil, false},
		{"valid", http.Header{"X-Trace": {"abc"}}, false},
		{"space in name", http.Header{"X Trace": {"abc"}}, true},
		{"newline in value", http.Header{"X-Trace": {"a\nb"}}, true},
		{"nul in value", http.Header{"X-Trace": {"a\x00b"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkHeaders(tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkHeaders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildRequest_BodyReplayable(t *testing.T) {
	c := newTestClient(t, "https://api.twitter.com/2/")
	u, _ := c.resolve("tweets")

	req, err := c.buildRequest(context.Background(), hop{method: http.MethodPost, url: u, body: []byte(`{"a":1}`)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.GetBody == nil {
		t.Fatal("GetBody must be set so the body can be replayed")
	}
	if req.ContentLength != int64(len(`{"a":1}`)) {
		t.Errorf("content length = %d", req.ContentLength)
	}
	for i := 0; i < 2; i++ {
		rc, _ := req.GetBody()
		b, _ := io.ReadAll(rc)
		if string(b) != `{"a":1}` {
			t.Errorf("replay %d: body = %q", i, b)
		}
	}
	if req.Header.Get("Authorization") != "Sig POST https://api.twitter.com/2/tweets" {
		t.Errorf("Authorization = %q", req.Header.Get("Authorization"))
	}
}

func TestBuildRequest_GetDropsBody(t *testing.T) {
	c := newTestClient(t, "https://api.twitter.com/2/")
	u, _ := c.resolve("tweets")

	req, err := c.buildRequest(context.Background(), hop{method: http.MethodGet, url: u, body: []byte("ignored")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Body != nil && req.Body != http.NoBody {
		t.Error("GET request must not carry a body")
	}
	if req.Header.Get("Content-Type") != "" {
		t.Errorf("GET should not set Content-Type, got %q", req.Header.Get("Content-Type"))
	}
}

func TestBuildRequest_SignerSeesFinalRequest(t *testing.T) {
	var seen http.Header
	c := newTestClient(t, "https://api.twitter.com/2/", func(cfg *Config) {
		cfg.Auth = credentials.AuthenticatorFunc(func(r *http.Request) (string, error) {
			seen = r.Header.Clone()
			return "ok", nil
		})
	})
	u, _ := c.resolve("tweets")

	_, err := c.buildRequest(context.Background(), hop{method: http.MethodPut, url: u, body: []byte("{}")},
		http.Header{"Authorization": {"caller"}, "X-Extra": {"1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen.Get("Authorization") != "" {
		t.Error("caller Authorization must be removed before signing")
	}
	if seen.Get("X-Extra") != "1" || seen.Get("Content-Type") != contentTypeJSON {
		t.Errorf("signer should see final headers, got %v", seen)
	}
}
