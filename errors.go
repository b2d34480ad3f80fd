package stockcalc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a total asset value that resolves to zero or
// negative; the planner computes nothing in that case.
var ErrInvalidInput = errors.New("total asset value must be positive")

// ConfigError reports a malformed portfolio model. It is fatal at startup:
// a planner cannot be constructed over a model that fails validation.
type ConfigError struct {
	Err error // joined list of individual issues
}

func (e *ConfigError) Error() string { return fmt.Sprintf("invalid portfolio model: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// ParseError reports a holdings token that is not a non-negative integer.
// The caller must abort before invoking the planner.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid holdings token %q: %v", e.Token, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }
