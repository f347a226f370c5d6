package httpclient

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/kbukum/xapi/errors"
	"github.com/kbukum/xapi/logger"
	"github.com/kbukum/xapi/observability"
)

// maxDrain caps how much of an intermediate redirect body is read before
// the connection is released.
const maxDrain = 64 << 10

// Client dispatches logical requests: it builds and signs each hop, sends it
// through the Transport and follows redirects up to the configured bound.
// A Client is safe for concurrent use.
type Client struct {
	config       Config
	base         *url.URL
	maxRedirects int
	transport    Transport
	log          *logger.Logger
	inst         *observability.Instruments
}

// New creates a dispatcher. No request is made.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Headers = maps.Clone(cfg.Headers)

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Configuration(fmt.Sprintf("invalid base_url %q", cfg.BaseURL)).WithCause(err)
	}

	transport := cfg.Transport
	if transport == nil {
		hc, err := NewTransport(&cfg)
		if err != nil {
			return nil, errors.Configuration(err.Error()).WithCause(err)
		}
		transport = hc
	}

	return &Client{
		config:       cfg,
		base:         base,
		maxRedirects: *cfg.MaxRedirects,
		transport:    transport,
		log:          cfg.Logger.WithComponent("httpclient"),
		inst:         cfg.Instruments,
	}, nil
}

// BaseURL returns the URL request paths are resolved against.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// Do sends req and follows redirects. It returns the terminal response
// whatever its status; use Classify to map it to an error.
//
// Transport failures are returned unchanged. Redirect failures are
// MALFORMED_REDIRECT or TOO_MANY_REDIRECTS errors.
func (c *Client) Do(ctx context.Context, req Request) (resp *Response, err error) {
	if err := checkMethod(req.Method); err != nil {
		return nil, err
	}
	if err := checkHeaders(req.Headers); err != nil {
		return nil, err
	}
	target, err := c.resolve(req.Path)
	if err != nil {
		return nil, err
	}

	cur := hop{method: req.Method, url: target, body: req.Body}
	if cur.method == http.MethodGet {
		cur.body = nil
	}

	ctx, call := c.inst.StartCall(ctx, req.Method, target.String())
	status := 0
	defer func() { call.End(ctx, status, err) }()

	log := c.log
	if log.DebugEnabled() {
		log = log.WithFields(logger.Fields(logger.FieldPath, req.Path))
	}
	start := time.Now()

	for {
		httpReq, err := c.buildRequest(ctx, cur, req.Headers)
		if err != nil {
			return nil, err
		}

		log.Debug("sending request", logger.Fields(
			logger.FieldMethod, cur.method,
			logger.FieldURL, cur.url.String(),
			logger.FieldHop, cur.count,
		))

		httpResp, err := c.transport.Do(httpReq)
		if err != nil {
			log.WithError(err).Debug("transport failed")
			return nil, err
		}
		call.RecordSend(ctx, cur.method, httpResp.StatusCode)

		if !isRedirect(httpResp.StatusCode) {
			body, err := readBody(httpResp)
			if err != nil {
				return nil, err
			}
			status = httpResp.StatusCode
			log.Debug("received response", logger.Fields(
				logger.FieldStatus, httpResp.StatusCode,
				logger.FieldURL, cur.url.String(),
				logger.FieldHop, cur.count,
			), logger.DurationFields(time.Since(start)))
			return &Response{
				StatusCode: httpResp.StatusCode,
				Status:     httpResp.Status,
				Headers:    httpResp.Header,
				Body:       body,
				URL:        cur.url,
				Hops:       cur.count,
			}, nil
		}

		next, err := cur.next(httpResp, c.maxRedirects)
		drain(httpResp)
		if err != nil {
			status = httpResp.StatusCode
			log.Debug("redirect failed", logger.ErrorFields(err))
			return nil, err
		}

		call.RecordRedirect(ctx, httpResp.StatusCode, next.url.String())
		log.Debug("following redirect", logger.Fields(
			logger.FieldStatus, httpResp.StatusCode,
			logger.FieldURL, cur.url.String(),
			logger.FieldLocation, next.url.String(),
			logger.FieldHop, next.count,
		))
		cur = next
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(resp.Body)
}

func drain(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	_ = resp.Body.Close()
}
