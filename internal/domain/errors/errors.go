package errors

import (
	"net/http"

	"wayfinder/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails adds detailed error information. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Navigation errors
	ErrInvalidInstanceSet = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_INSTANCE_SET",
		"destination has no physical instances",
		"",
	)

	ErrDestinationNotFound = NewBaseError(
		http.StatusNotFound,
		"DESTINATION_NOT_FOUND",
		"destination not found",
		"",
	)

	ErrNoActiveDestination = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_DESTINATION",
		"no navigation in progress",
		"",
	)

	ErrPositionOffGraph = NewBaseError(
		http.StatusUnprocessableEntity,
		"POSITION_OFF_GRAPH",
		"position is too far from the walkable area",
		"",
	)

	// Configuration errors
	ErrInvalidConfig = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_CONFIG",
		"invalid navigation configuration",
		"",
	)

	// Relocalization errors
	ErrAnchorNotFound = NewBaseError(
		http.StatusNotFound,
		"ANCHOR_NOT_FOUND",
		"anchor not found",
		"",
	)

	ErrInvalidAnchorPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ANCHOR_PAYLOAD",
		"invalid anchor payload",
		"",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"POSITION_UNAVAILABLE",
		"no position sample available",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)
