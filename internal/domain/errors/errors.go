package errors

import (
	"net/http"

	"github.com/ogarmar/Compa/internal/errors"
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
	// Pairing-related errors
	ErrDeviceCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_CODE_NOT_FOUND",
		"No device with that code exists",
		"",
	)

	ErrDeviceUnreachable = NewBaseError(
		http.StatusConflict,
		"DEVICE_UNREACHABLE",
		"The device is not connected right now",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"The pairing request is unknown, already answered or expired",
		"",
	)

	ErrNotPaired = NewBaseError(
		http.StatusNotFound,
		"NOT_PAIRED",
		"You are not connected to that device",
		"",
	)

	ErrAliasConflict = NewBaseError(
		http.StatusConflict,
		"ALIAS_IN_USE",
		"You already use that alias for another device",
		"",
	)

	// Relay-related errors
	ErrUnknownAlias = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_ALIAS",
		"No paired device matches that alias",
		"",
	)

	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"No message with that identifier exists",
		"",
	)

	// Transport-related errors
	ErrTransportFailure = NewBaseError(
		http.StatusBadGateway,
		"TRANSPORT_FAILURE",
		"Could not deliver to the device",
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

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
