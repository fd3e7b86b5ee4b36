package config

import (
	"errors"
	"fmt"
	"strings"
)

// Common configuration errors. Use errors.Is to match them; the structured
// error types below wrap one of these.
var (
	// ErrMissingRequired is returned when one or more required variables
	// have no value in either the environment file or the live environment.
	ErrMissingRequired = errors.New("missing required configuration")

	// ErrInvalidField is returned when a present value fails its field's
	// validation rule.
	ErrInvalidField = errors.New("invalid configuration value")

	// ErrMalformed is returned when a value cannot be parsed into the
	// shape its accessor promises.
	ErrMalformed = errors.New("malformed configuration value")

	// ErrEnvFile is returned when the environment file exists but cannot be
	// read or parsed.
	ErrEnvFile = errors.New("cannot read environment file")
)

// MissingFieldsError lists every required variable that had no value.
// Fields are reported in schema order.
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface for MissingFieldsError.
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequired, strings.Join(e.Fields, ", "))
}

// Unwrap returns ErrMissingRequired to support errors.Is.
func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingRequired
}

// InvalidFieldError reports a value that failed its validation rule.
type InvalidFieldError struct {
	Field string // The variable name (e.g., "LOG_LEVEL")
	Value string // The offending value
	Rule  string // The validator rule it failed (e.g., "oneof=debug info")
	Err   error  // Original validator error
}

// Error implements the error interface for InvalidFieldError.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s=%q does not satisfy %q", ErrInvalidField, e.Field, e.Value, e.Rule)
}

// Unwrap returns ErrInvalidField and the validator error.
func (e *InvalidFieldError) Unwrap() []error {
	return wrapped(ErrInvalidField, e.Err)
}

// MalformedError reports a value that could not be parsed by its accessor.
// The raw value is deliberately left out of the message.
type MalformedError struct {
	Field  string // The variable name (e.g., "BACKEND_CORS_ORIGINS")
	Reason string // Short description of what was wrong
	Err    error  // Original parse error, if any
}

// Error implements the error interface for MalformedError.
func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", ErrMalformed, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformed, e.Field, e.Reason)
}

// Unwrap returns ErrMalformed and the parse error.
func (e *MalformedError) Unwrap() []error {
	return wrapped(ErrMalformed, e.Err)
}

func wrapped(sentinel, err error) []error {
	if err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, err}
}
