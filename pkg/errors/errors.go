// Package errors provides custom error types for the mirrorsync system.
// These errors enable programmatic error checking at the transport boundary
// (retryable vs. fatal) and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the mirrorsync system
var (
	// ErrNotFound indicates that a requested remote resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates that the integration token was rejected or
	// the database is not shared with the integration
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable indicates that the remote service is temporarily unavailable
	ErrUnavailable = errors.New("service unavailable")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// AccessError indicates a database is unreachable or not shared with the
// integration. This is fatal for a sync run: without a destination schema
// there is no meaningful partial sync.
type AccessError struct {
	Database string // obfuscated database ID
	Label    string // human-facing role, e.g. "master" or "mirror"
	Message  string
	Err      error
}

// Error implements the error interface
func (e *AccessError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("cannot access %s database %s: %s", e.Label, e.Database, e.Message)
	}
	return fmt.Sprintf("cannot access database %s: %s", e.Database, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AccessError) Is(target error) bool {
	return target == ErrUnauthorized || target == ErrNotFound
}

// NewAccessError creates a new AccessError
func NewAccessError(label, database, message string, err error) *AccessError {
	return &AccessError{
		Database: database,
		Label:    label,
		Message:  message,
		Err:      err,
	}
}

// APIError represents an error response from the Notion API.
// A StatusCode of 0 means the request never completed (network failure).
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error (status %d) at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API request to %s failed: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support, mapping status codes to sentinels.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrUnavailable
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrUnauthorized
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 0 && e.Err != nil:
		// request-level failure, treated as a transient outage
		return target == ErrUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// SyncError represents a failure to write a single page during a sync run.
// It is reported and counted, not fatal to the remaining pages.
type SyncError struct {
	Title  string // natural key of the page that failed
	Action string // "create" or "update"
	Err    error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("failed to %s page %q: %v", e.Action, e.Title, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(action, title string, err error) *SyncError {
	return &SyncError{Title: title, Action: action, Err: err}
}

// Helper functions for error checking

// Retryable reports whether an error describes a transient remote condition
// worth retrying. Everything else (bad payloads, missing permissions) must
// propagate immediately without consuming retry budget.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error is an authorization error
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(statusCode int, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    err.Error(),
		Err:        err,
	}
}
