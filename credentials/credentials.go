package credentials

import (
	"github.com/kbukum/xapi/errors"
	"github.com/kbukum/xapi/validation"
)

// Credentials is the closed set of supported credential kinds:
// BearerToken and OAuthKeys.
type Credentials interface {
	authenticator() (Authenticator, error)
}

// BearerToken is an app-only bearer token presented verbatim.
type BearerToken string

// OAuthKeys holds the consumer key pair and the user access token pair.
type OAuthKeys struct {
	APIKey            string `yaml:"api_key" mapstructure:"api_key" validate:"required"`
	APIKeySecret      string `yaml:"api_key_secret" mapstructure:"api_key_secret" validate:"required"`
	AccessToken       string `yaml:"access_token" mapstructure:"access_token" validate:"required"`
	AccessTokenSecret string `yaml:"access_token_secret" mapstructure:"access_token_secret" validate:"required"`
}

// IsZero reports whether no OAuth field is set.
func (k OAuthKeys) IsZero() bool {
	return k == OAuthKeys{}
}

// Validate checks that all four OAuth fields are present.
func (k OAuthKeys) Validate() error {
	if err := validation.Validate(k); err != nil {
		e, _ := errors.As(err)
		e.Message = "Missing OAuth credentials. " + e.Message
		return e
	}
	return nil
}

// Resolve picks the credential kind from construction parameters.
// A non-empty bearer token selects bearer auth and excludes every OAuth field;
// otherwise all four OAuth fields are required.
func Resolve(bearerToken string, keys OAuthKeys) (Credentials, error) {
	if bearerToken != "" {
		if !keys.IsZero() {
			return nil, errors.Configuration("bearer_token cannot be combined with OAuth credentials")
		}
		return BearerToken(bearerToken), nil
	}
	if err := keys.Validate(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (t BearerToken) authenticator() (Authenticator, error) {
	if t == "" {
		return nil, errors.Configuration("bearer_token must not be empty")
	}
	return Bearer(string(t)), nil
}

func (k OAuthKeys) authenticator() (Authenticator, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return NewOAuth(k), nil
}
