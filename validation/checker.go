package validation

import (
	"strings"

	"github.com/kbukum/xapi/errors"
)

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Checker collects field errors for rules that struct tags cannot express.
type Checker struct {
	fields []FieldError
}

// NewChecker creates an empty Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check records message for field when ok is false.
func (c *Checker) Check(ok bool, field, message string) *Checker {
	if !ok {
		c.Fail(field, message)
	}
	return c
}

// Fail records message for field unconditionally.
func (c *Checker) Fail(field, message string) *Checker {
	c.fields = append(c.fields, FieldError{Field: field, Message: message})
	return c
}

// Err returns nil when no rule failed, otherwise a CONFIGURATION error
// listing every failure.
func (c *Checker) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	messages := make([]string, len(c.fields))
	for i, f := range c.fields {
		if f.Field == "" {
			messages[i] = f.Message
			continue
		}
		messages[i] = f.Field + ": " + f.Message
	}
	return errors.Configuration(strings.Join(messages, "; ")).
		WithDetail("fields", append([]FieldError(nil), c.fields...))
}
