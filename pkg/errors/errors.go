// Package errors provides custom error types for the contribmap system.
// These errors enable programmatic error checking and map the error
// taxonomy of a run: configuration errors are fatal before any work
// begins, fetch and parse errors abort the run, and notification
// transport errors are logged and swallowed.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the contribmap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigMissing indicates that required configuration is absent
	ErrConfigMissing = errors.New("configuration missing")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ConfigError represents a configuration problem detected before any
// work has been done. These are always fatal.
type ConfigError struct {
	Key     string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigMissing
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// FetchError represents a failure to retrieve a remote resource.
type FetchError struct {
	Resource   string // "sheet", "webhook"
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("failed to fetch %s (HTTP %d): %s", e.Resource, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("failed to fetch %s: %s", e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", "json"
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s from %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during file I/O operations
type IOError struct {
	Operation string // "read", "write", "create"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NotifyError represents a webhook delivery failure. Callers log these
// and continue; they never affect output correctness.
type NotifyError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *NotifyError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("notification failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notification failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *NotifyError) Unwrap() error {
	return e.Err
}

// Helper wrapping functions for common patterns

// WrapFetch wraps an error as a FetchError
func WrapFetch(resource, url string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Resource: resource, URL: url, Message: err.Error(), Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Source: source, Message: err.Error(), Err: err}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Message: err.Error(), Err: err}
}

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As
