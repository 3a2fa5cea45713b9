package errors

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
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

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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
	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"Session expired, please log in again",
		"",
	)

	// Moderation-related errors
	ErrReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REASON_REQUIRED",
		"A reason is required to reject",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"Invalid status transition",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Status filter must be one of all, pending, approved, rejected",
		"",
	)

	// Upstream-related errors
	ErrUnexpectedFormat = NewBaseError(
		http.StatusBadGateway,
		"UNEXPECTED_FORMAT",
		"Unexpected response format",
		"",
	)

	// ErrNotImplemented marks routes whose data source is a placeholder.
	ErrNotImplemented = NewBaseError(
		http.StatusNotImplemented,
		"NOT_IMPLEMENTED",
		"This endpoint has no backend implementation yet",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// BackendError is a non-2xx answer from the external backend. Its status and
// message are surfaced to the caller unchanged.
type BackendError struct {
	status  int
	message string
	path    string
}

// NewBackendError creates an error for a failed upstream call. An empty
// message falls back to the status text.
func NewBackendError(status int, message, path string) AppError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "Backend request failed"
	}

	return &BackendError{status: status, message: message, path: path}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return "backend " + e.path + ": " + e.message
}

// HTTPCode returns the upstream status
func (e *BackendError) HTTPCode() int {
	if e.status < 400 || e.status > 599 {
		return http.StatusBadGateway
	}

	return e.status
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	if e.status == http.StatusUnauthorized {
		return ErrUnauthorized.ErrorCode()
	}

	return "BACKEND_ERROR"
}

// Message returns the upstream message
func (e *BackendError) Message() string {
	return e.message
}

// Details returns the upstream path that failed
func (e *BackendError) Details() string {
	return e.path
}

// IsUnauthorized reports whether err means the caller's credentials were rejected.
func IsUnauthorized(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusUnauthorized
}
