package httpclient

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/xapi/credentials"
	"github.com/kbukum/xapi/errors"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %v", cfg.Timeout)
	}
	if cfg.MaxRedirects == nil || *cfg.MaxRedirects != DefaultMaxRedirects {
		t.Errorf("expected max redirects %d, got %v", DefaultMaxRedirects, cfg.MaxRedirects)
	}
	if !strings.HasPrefix(cfg.UserAgent, "xapi-go/") {
		t.Errorf("user agent = %q", cfg.UserAgent)
	}
	if cfg.Logger == nil || cfg.Instruments == nil {
		t.Error("logger and instruments should default to no-ops")
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	zero := 0
	cfg := Config{BaseURL: "https://example.com/api", Timeout: 5 * time.Second, MaxRedirects: &zero}
	cfg.ApplyDefaults()

	if cfg.BaseURL != "https://example.com/api/" {
		t.Errorf("expected trailing slash appended, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if *cfg.MaxRedirects != 0 {
		t.Errorf("explicit zero max redirects must be kept, got %d", *cfg.MaxRedirects)
	}
}

func TestConfig_Validate(t *testing.T) {
	neg := -1
	valid := func() Config {
		cfg := Config{Auth: credentials.Bearer("t")}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"relative base", func(c *Config) { c.BaseURL = "api/2/" }, "base_url"},
		{"non-http base", func(c *Config) { c.BaseURL = "ftp://example.com/" }, "base_url"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"negative redirects", func(c *Config) { c.MaxRedirects = &neg }, "max_redirects"},
		{"missing auth", func(c *Config) { c.Auth = nil }, "auth"},
		{"bad proxy", func(c *Config) { c.ProxyURL = "://nope" }, "proxy_url"},
		{"bad header", func(c *Config) { c.Headers = map[string]string{"Bad Name": "v"} }, "headers"},
		{"tls pair", func(c *Config) { c.TLS = &TLSConfig{CertFile: "cert.pem"} }, "tls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsConfiguration(err) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field+":") {
				t.Errorf("expected %s in %q", tt.field, err.Error())
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{}); !errors.IsConfiguration(err) {
		t.Errorf("expected configuration error without auth, got %v", err)
	}
}

func TestNew_BuildsDefaultTransport(t *testing.T) {
	c, err := New(Config{Auth: credentials.Bearer("t"), ProxyURL: "http://proxy.internal:3128"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL().String() != DefaultBaseURL {
		t.Errorf("base url = %s", c.BaseURL())
	}
	hc, ok := c.transport.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client transport, got %T", c.transport)
	}
	if hc.Timeout != 60*time.Second {
		t.Errorf("timeout = %v", hc.Timeout)
	}
	if hc.CheckRedirect == nil || hc.CheckRedirect(nil, nil) != http.ErrUseLastResponse {
		t.Error("default transport must not follow redirects")
	}
}
