package app

import "fmt"

// ConfigurationError reports a missing credential, identifier, or
// remote column that a required logical field could not resolve to.
// Configuration errors skip the affected step; they are not fatal to
// the whole run.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}
