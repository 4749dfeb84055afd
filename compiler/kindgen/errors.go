package kindgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("kindgen: missing configuration")
	// ErrInvalidKind indicates a kind definition error.
	ErrInvalidKind = errors.New("kindgen: invalid kind")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("kindgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("kindgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// KindError represents an invalid kind definition.
type KindError struct {
	Kind    string // Kind name
	Message string
}

// Error implements the error interface.
func (e *KindError) Error() string {
	if e.Kind == "" {
		return "kindgen: kind error: " + e.Message
	}
	return fmt.Sprintf("kindgen: kind error on %q: %s", e.Kind, e.Message)
}

// Is reports whether the target matches the sentinel error for KindError.
func (e *KindError) Is(target error) bool {
	return target == ErrInvalidKind
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsKindError reports whether the error is a KindError.
func IsKindError(err error) bool {
	var kindErr *KindError
	return errors.As(err, &kindErr)
}
