package xapi

import (
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/xapi/config"
	"github.com/kbukum/xapi/credentials"
	"github.com/kbukum/xapi/decode"
	"github.com/kbukum/xapi/errors"
	"github.com/kbukum/xapi/httpclient"
	"github.com/kbukum/xapi/logger"
	"github.com/kbukum/xapi/observability"
)

// Config holds construction parameters for a Client.
//
// Exactly one credential kind must be present: BearerToken, or all four
// OAuth fields. Fields tagged mapstructure:"-" can only be set in code.
type Config struct {
	// BearerToken selects app-only authentication.
	BearerToken string `yaml:"bearer_token" mapstructure:"bearer_token"`

	// The four OAuth 1.0a fields select user-context authentication.
	APIKey            string `yaml:"api_key" mapstructure:"api_key"`
	APIKeySecret      string `yaml:"api_key_secret" mapstructure:"api_key_secret"`
	AccessToken       string `yaml:"access_token" mapstructure:"access_token"`
	AccessTokenSecret string `yaml:"access_token_secret" mapstructure:"access_token_secret"`

	// BaseURL defaults to https://api.twitter.com/2/.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// MaxRedirects defaults to 5. Zero disables following.
	MaxRedirects *int `yaml:"max_redirects" mapstructure:"max_redirects"`

	Timeout   time.Duration         `yaml:"timeout" mapstructure:"timeout"`
	ProxyURL  string                `yaml:"proxy_url" mapstructure:"proxy_url"`
	UserAgent string                `yaml:"user_agent" mapstructure:"user_agent"`
	TLS       *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`
	Headers   map[string]string     `yaml:"headers" mapstructure:"headers"`
	Log       *logger.Config        `yaml:"log" mapstructure:"log"`

	// ObjectShape and ArrayShape are the default decode shapes.
	// Nil means decode.Map and decode.Slice.
	ObjectShape decode.ObjectShape `yaml:"-" mapstructure:"-"`
	ArrayShape  decode.ArrayShape  `yaml:"-" mapstructure:"-"`

	// Logger overrides Log. When both are nil the client logs nothing.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// Transport replaces the default *http.Client.
	Transport httpclient.Transport `yaml:"-" mapstructure:"-"`

	// TracerProvider and MeterProvider default to the otel globals.
	TracerProvider trace.TracerProvider `yaml:"-" mapstructure:"-"`
	MeterProvider  metric.MeterProvider `yaml:"-" mapstructure:"-"`
}

// LoadConfig reads a Config from xapi.yml, .env and X_-prefixed
// environment variables, e.g. X_BEARER_TOKEN or X_TLS_CA_FILE.
func LoadConfig(opts ...config.LoaderOption) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate resolves the credential kind and checks the log settings.
func (c *Config) validate() (credentials.Credentials, error) {
	creds, err := credentials.Resolve(c.BearerToken, c.oauthKeys())
	if err != nil {
		return nil, err
	}
	if c.Log != nil && c.Logger == nil {
		lc := *c.Log
		lc.ApplyDefaults()
		if err := lc.Validate(); err != nil {
			return nil, errors.Configuration(err.Error()).WithCause(err)
		}
	}
	return creds, nil
}

func (c *Config) oauthKeys() credentials.OAuthKeys {
	return credentials.OAuthKeys{
		APIKey:            c.APIKey,
		APIKeySecret:      c.APIKeySecret,
		AccessToken:       c.AccessToken,
		AccessTokenSecret: c.AccessTokenSecret,
	}
}

func (c *Config) newLogger() *logger.Logger {
	switch {
	case c.Logger != nil:
		return c.Logger
	case c.Log != nil:
		return logger.New(c.Log, "xapi")
	default:
		return logger.NewNop()
	}
}

func (c *Config) httpConfig(auth credentials.Authenticator, log *logger.Logger, inst *observability.Instruments) httpclient.Config {
	return httpclient.Config{
		BaseURL:      c.BaseURL,
		Timeout:      c.Timeout,
		MaxRedirects: c.MaxRedirects,
		TLS:          c.TLS,
		ProxyURL:     c.ProxyURL,
		UserAgent:    c.UserAgent,
		Headers:      c.Headers,
		Auth:         auth,
		Transport:    c.Transport,
		Logger:       log,
		Instruments:  inst,
	}
}

// Int returns a pointer to n, for Config.MaxRedirects.
func Int(n int) *int {
	return &n
}
