package battle

import (
	"errors"
	"fmt"
)

// ConfigError reports malformed battle input: empty forces, duplicate force
// identity, or unrecognized terrain/trait/enhancement IDs. It is always
// detected before the first phase; a battle that returns a ConfigError has
// mutated nothing and logged nothing.
type ConfigError struct {
	Reason string
}

// Error returns the descriptive reason.
func (e *ConfigError) Error() string {
	return "battle: invalid configuration: " + e.Reason
}

// configErrorf builds a ConfigError with a formatted reason.
func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
