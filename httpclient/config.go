package httpclient

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/kbukum/xapi/credentials"
	"github.com/kbukum/xapi/logger"
	"github.com/kbukum/xapi/observability"
	"github.com/kbukum/xapi/validation"
	"github.com/kbukum/xapi/version"
)

const (
	// DefaultBaseURL is the X API v2 root.
	DefaultBaseURL = "https://api.twitter.com/2/"
	// DefaultMaxRedirects bounds redirect chains when Config.MaxRedirects is nil.
	DefaultMaxRedirects = 5

	defaultTimeout = 60 * time.Second
)

// Config configures the dispatcher.
type Config struct {
	// BaseURL is the absolute URL request paths are resolved against.
	// A trailing slash is appended when missing.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each hop, including reading the body. Defaults to 60s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRedirects is the number of redirects followed before failing.
	// Nil means DefaultMaxRedirects; zero disables following.
	MaxRedirects *int `yaml:"max_redirects" mapstructure:"max_redirects"`

	// TLS configures the default transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// ProxyURL routes the default transport through a proxy.
	ProxyURL string `yaml:"proxy_url" mapstructure:"proxy_url"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth produces the Authorization header for every hop. Required.
	Auth credentials.Authenticator `yaml:"-" mapstructure:"-"`

	// Transport sends requests. Nil builds an *http.Client from Timeout,
	// TLS and ProxyURL with automatic redirects disabled.
	Transport Transport `yaml:"-" mapstructure:"-"`

	// Logger receives debug events. Nil logs nothing.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// Instruments records spans and metrics. Nil records nothing.
	Instruments *observability.Instruments `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRedirects == nil {
		n := DefaultMaxRedirects
		c.MaxRedirects = &n
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.Logger == nil {
		c.Logger = logger.NewNop()
	}
	if c.Instruments == nil {
		c.Instruments = observability.NewNopInstruments()
	}
}

// Validate checks that the configuration is usable. Failures are reported
// together as a CONFIGURATION error.
func (c *Config) Validate() error {
	v := validation.NewChecker()

	base, err := url.Parse(c.BaseURL)
	v.Check(err == nil && base.IsAbs() && base.Host != "" && isHTTPScheme(base.Scheme),
		"base_url", fmt.Sprintf("must be an absolute http(s) URL (got: %q)", c.BaseURL))
	v.Check(c.Timeout > 0, "timeout", "must be positive")
	v.Check(c.MaxRedirects == nil || *c.MaxRedirects >= 0, "max_redirects", "must not be negative")
	v.Check(c.Auth != nil, "auth", "is required")

	if c.ProxyURL != "" {
		p, err := url.Parse(c.ProxyURL)
		v.Check(err == nil && p.Host != "", "proxy_url", fmt.Sprintf("must be an absolute URL (got: %q)", c.ProxyURL))
	}
	for k, val := range c.Headers {
		v.Check(httpguts.ValidHeaderFieldName(k), "headers", fmt.Sprintf("invalid header name %q", k))
		v.Check(httpguts.ValidHeaderFieldValue(val), "headers", fmt.Sprintf("invalid value for header %q", k))
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			v.Fail("tls", err.Error())
		}
	}
	return v.Err()
}

func isHTTPScheme(s string) bool {
	return s == "http" || s == "https"
}
