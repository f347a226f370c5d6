// Package validation validates client configuration.
//
// Struct tag validation uses go-playground/validator; field names in messages
// come from the mapstructure (or json) tag so they match the keys users put
// in config files and environment variables:
//
//	type Keys struct {
//	    APIKey string `mapstructure:"api_key" validate:"required"`
//	}
//	err := validation.Validate(keys) // CONFIGURATION: api_key: is required
//
// Cross-field rules use the programmatic Checker:
//
//	c := validation.NewChecker()
//	c.Check(max >= 0, "max_redirects", "must not be negative")
//	err := c.Err()
//
// All failures are *errors.Error values with code CONFIGURATION.
package validation
