// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers. Every caller-visible failure maps onto one of
// the AppError values below; the HTTP status mapping lives in the error
// middleware, not here.
package errors

import (
	"net/http"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrUnauthenticated covers missing, malformed, invalid and expired
	// credentials alike.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing or invalid credential",
	)

	// ErrForbidden is returned when an authenticated caller is not the owner
	// of the resource. Note this confirms the resource exists; see DESIGN.md.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this resource",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request payload failed validation",
	)

	ErrUnexpected = NewBaseError(
		http.StatusInternalServerError,
		"UNEXPECTED",
		"Internal server error",
	)
)

// ValidationError is an AppError that enumerates every violated field so the
// caller can correct all problems in one round trip. It unwraps to
// ErrValidationFailed for errors.Is checks.
type ValidationError struct {
	violations []string
}

// NewValidationError creates a validation error from the collected messages.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{violations: violations}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.violations, "; ")
}

// Unwrap allows errors.Is(err, ErrValidationFailed)
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the full list of violated-field messages
func (e *ValidationError) Details() any {
	return e.violations
}

// Violations returns the individual messages collected during validation.
func (e *ValidationError) Violations() []string {
	return e.violations
}
