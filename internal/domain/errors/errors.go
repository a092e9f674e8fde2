// Package errors defines the application error taxonomy. Expected business
// conditions are returned as failure envelopes by the usecases; only the
// errors defined here escape an operation boundary.
package errors

import (
	"net/http"

	"empdir/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrUnauthorized is raised by the authorization guard when a
	// protected operation runs without an attached identity.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized. Please login first.",
		"",
	)

	// ErrValidationFailed covers malformed or out-of-range input fields.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrInvalidID covers malformed record identifiers.
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid id format",
		"",
	)

	// ErrUploadFailed covers any fault from the image host.
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"File upload failed",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected persistence fault.
func NewDatabaseExecuteError(err error, details string) AppError {
	message := "Database operation failed"
	if err != nil {
		message = err.Error()
	}

	return &BaseError{
		httpCode:  http.StatusInternalServerError,
		errorCode: "DATABASE_ERROR",
		message:   message,
		details:   details,
	}
}
