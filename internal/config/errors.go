package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by every *InvalidConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError reports a missing or malformed required
// collaborator. Constructors return it instead of a partially built value.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

func missing(field string) error {
	return &InvalidConfigurationError{Field: field, Reason: "must not be nil"}
}
