package config

import (
	"errors"
	"fmt"

	"github.com/dshills/gaptext/internal/config/loader"
)

// ErrInvalid indicates a setting has an unacceptable value.
var ErrInvalid = errors.New("invalid setting")

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Key is the setting name as written in configuration files.
	Key string
	// Value is the invalid value.
	Value any
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Key, e.Value, e.Message)
}

// Unwrap returns ErrInvalid.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
