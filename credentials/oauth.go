package credentials

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
	"github.com/google/uuid"
)

// OAuth signs requests with OAuth 1.0a HMAC-SHA1 using a consumer key pair
// and a user access token pair. Signing is delegated to dghubble/oauth1.
type OAuth struct {
	config *oauth1.Config
	token  *oauth1.Token
}

// NewOAuth creates an OAuth authenticator. Callers are expected to have
// validated keys (see OAuthKeys.Validate); New does that for you.
func NewOAuth(keys OAuthKeys) *OAuth {
	cfg := oauth1.NewConfig(keys.APIKey, keys.APIKeySecret)
	cfg.Noncer = uuidNoncer{}
	return &OAuth{
		config: cfg,
		token:  oauth1.NewToken(keys.AccessToken, keys.AccessTokenSecret),
	}
}

// WithNoncer returns a copy of o that draws nonces from n.
func (o *OAuth) WithNoncer(n oauth1.Noncer) *OAuth {
	cfg := *o.config
	cfg.Noncer = n
	return &OAuth{config: &cfg, token: o.token}
}

// Sign computes the OAuth Authorization header for req. The signature covers
// req.Method and the absolute req.URL, so the result is only valid for that
// exact request.
func (o *OAuth) Sign(req *http.Request) (string, error) {
	rec := &headerRecorder{}
	ctx := context.WithValue(req.Context(), oauth1.HTTPClient, &http.Client{Transport: rec})

	probe := req.Clone(ctx)
	probe.Body = http.NoBody
	probe.ContentLength = 0
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return "", fmt.Errorf("credentials: read body for signing: %w", err)
		}
		probe.Body = body
	}

	resp, err := o.config.Client(ctx, o.token).Do(probe)
	if err != nil {
		return "", fmt.Errorf("credentials: oauth sign: %w", err)
	}
	_ = resp.Body.Close()

	if !strings.HasPrefix(rec.authorization, "OAuth ") {
		return "", fmt.Errorf("credentials: oauth signer produced no Authorization header")
	}
	return rec.authorization, nil
}

// headerRecorder is the terminal RoundTripper behind the oauth1 transport.
// It captures the signed Authorization header instead of sending anything.
type headerRecorder struct {
	authorization string
}

func (r *headerRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	r.authorization = req.Header.Get("Authorization")
	if req.Body != nil {
		_ = req.Body.Close()
	}
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Status:     "204 No Content",
		Header:     make(http.Header),
		Body:       http.NoBody,
		Request:    req,
	}, nil
}

// uuidNoncer yields 32 hex characters from a random UUID.
type uuidNoncer struct{}

func (uuidNoncer) Nonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
