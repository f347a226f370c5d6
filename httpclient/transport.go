package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
)

// Transport sends a single HTTP request. It must not follow redirects;
// the dispatcher handles them so that every hop is re-signed.
//
// *http.Client satisfies Transport when its CheckRedirect returns
// http.ErrUseLastResponse.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f TransportFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// NewTransport builds the default transport from cfg: an *http.Client with
// the configured timeout, TLS settings and proxy, and redirects disabled.
func NewTransport(cfg *Config) (*http.Client, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			base.TLSClientConfig = tlsCfg
		}
	}

	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("httpclient: parse proxy url: %w", err)
		}
		base.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{
		Transport: base,
		Timeout:   cfg.Timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}, nil
}
