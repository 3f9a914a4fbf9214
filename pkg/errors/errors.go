// Package errors provides custom error types for the labelsync system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the labelsync system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTokenRequired indicates that an access token is required but not provided
	ErrTokenRequired = errors.New("access token required")

	// ErrTokenInvalid indicates that the provided access token was rejected
	ErrTokenInvalid = errors.New("access token invalid")

	// ErrUnavailable indicates that the remote API is temporarily unavailable
	ErrUnavailable = errors.New("service unavailable")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

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

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "watch"
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

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
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

// APIError represents an error response from the remote labels API
type APIError struct {
	Host       string // API host, e.g. "api.github.com"
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Host, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Host, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrTokenInvalid
	case 404:
		return target == ErrNotFound
	case 422:
		return target == ErrInvalidInput
	case 429:
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(host string, statusCode int, message string) *APIError {
	return &APIError{
		Host:       host,
		StatusCode: statusCode,
		Message:    message,
	}
}

// AuthenticationError represents an authentication/authorization error
type AuthenticationError struct {
	Host    string
	Method  string // "bearer", "none"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Host != "" {
		return fmt.Sprintf("authentication error for %s (%s): %s", e.Host, e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrTokenRequired || target == ErrTokenInvalid
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(host, method, message string, err error) *AuthenticationError {
	return &AuthenticationError{
		Host:    host,
		Method:  method,
		Message: message,
		Err:     err,
	}
}

// ActionError represents a failed reconciliation action against a single label
type ActionError struct {
	Operation string // "create", "update", "delete", "list"
	Label     string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ActionError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("failed to %s label %s: %s", e.Operation, e.Label, e.Message)
	}
	return fmt.Sprintf("failed to %s labels: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates a new ActionError
func NewActionError(operation, label string, err error) *ActionError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ActionError{
		Operation: operation,
		Label:     label,
		Message:   message,
		Err:       err,
	}
}

// ApplyError aggregates per-action failures from a plan application that
// continued past individual errors.
type ApplyError struct {
	Failed int
	Total  int
	Errs   []error
}

// Error implements the error interface
func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply incomplete: %d of %d actions failed", e.Failed, e.Total)
}

// Unwrap implements errors.Unwrap for multi-error support
func (e *ApplyError) Unwrap() []error {
	return e.Errs
}

// NewApplyError creates a new ApplyError
func NewApplyError(total int, errs []error) *ApplyError {
	return &ApplyError{
		Failed: len(errs),
		Total:  total,
		Errs:   errs,
	}
}

// SyncError represents a fatal error during a sync run
type SyncError struct {
	Repository string
	Err        error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	if e.Repository != "" {
		return fmt.Sprintf("sync error for repository %s: %v", e.Repository, e.Err)
	}
	return fmt.Sprintf("sync error: %v", e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(repository string, err error) *SyncError {
	return &SyncError{
		Repository: repository,
		Err:        err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTokenError checks if an error is related to access tokens
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenRequired) || errors.Is(err, ErrTokenInvalid)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsUnavailable checks if an error indicates the remote API is unavailable
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapAction wraps an error as an ActionError
func WrapAction(operation, label string, err error) error {
	if err == nil {
		return nil
	}
	return NewActionError(operation, label, err)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(host string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Host:       host,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
