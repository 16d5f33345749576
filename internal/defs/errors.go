// internal/defs/errors.go
package defs

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigError is a fatal problem with the map, settings or archetype data.
// A game is never constructed when one is returned.
type ConfigError struct {
	Source string // what was being validated, e.g. "tower \"arrow\""
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// Invalid builds a *ConfigError from a format string.
func Invalid(source, format string, args ...any) *ConfigError {
	return &ConfigError{Source: source, Err: fmt.Errorf(format, args...)}
}
