package xapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"

	"github.com/kbukum/xapi/credentials"
	"github.com/kbukum/xapi/decode"
	"github.com/kbukum/xapi/errors"
	"github.com/kbukum/xapi/httpclient"
	"github.com/kbukum/xapi/logger"
	"github.com/kbukum/xapi/observability"
)

// Client calls the X API. It is immutable after New and safe for
// concurrent use.
type Client struct {
	http        *httpclient.Client
	objectShape decode.ObjectShape
	arrayShape  decode.ArrayShape
	log         *logger.Logger
}

// New validates cfg and builds a Client. No request is made.
func New(cfg Config) (*Client, error) {
	creds, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	auth, err := credentials.New(creds)
	if err != nil {
		return nil, err
	}
	inst, err := observability.NewInstruments(cfg.TracerProvider, cfg.MeterProvider)
	if err != nil {
		return nil, errors.Configuration("failed to create instruments").WithCause(err)
	}

	log := cfg.newLogger()
	hc, err := httpclient.New(cfg.httpConfig(auth, log, inst))
	if err != nil {
		return nil, err
	}

	c := &Client{
		http:        hc,
		objectShape: cfg.ObjectShape,
		arrayShape:  cfg.ArrayShape,
		log:         log.WithComponent("xapi"),
	}
	c.log.Debug("client created", logger.Fields(
		logger.FieldURL, hc.BaseURL().String(),
		"auth", authMode(creds),
	))
	return c, nil
}

// BaseURL returns the URL request paths are resolved against.
func (c *Client) BaseURL() *url.URL {
	return c.http.BaseURL()
}

// Get sends a GET request to path and decodes the response.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (any, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post sends body to path with POST. See Do for the accepted body types.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (any, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put sends body to path with PUT. See Do for the accepted body types.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (any, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Delete sends a DELETE request to path and decodes the response.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts...)
}

// Do sends one logical request and decodes the terminal response.
//
// Path is resolved against the base URL: "tweets" extends it, "/x" replaces
// its path and absolute URLs are used as given. Body may be nil, []byte,
// string, an io.Reader (read fully), or any other value, which is encoded
// as JSON. GET requests never carry a body.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...CallOption) (any, error) {
	co := callOptions{objectShape: c.objectShape, arrayShape: c.arrayShape}
	for _, opt := range opts {
		opt(&co)
	}

	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  method,
		Path:    path,
		Headers: co.headers,
		Body:    payload,
	})
	if err != nil {
		return nil, err
	}
	return Decode(resp, co.objectShape, co.arrayShape)
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, errors.InvalidRequest("failed to read request body").WithCause(err)
		}
		return data, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, errors.InvalidRequest(fmt.Sprintf("failed to encode %T as JSON", b)).WithCause(err)
		}
		return data, nil
	}
}

func authMode(c credentials.Credentials) string {
	if _, ok := c.(credentials.BearerToken); ok {
		return "bearer"
	}
	return "oauth"
}
