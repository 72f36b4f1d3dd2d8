// Package errors defines the application error taxonomy. Every failure a
// client can cause is represented by a predefined AppError carrying an HTTP
// status, a stable business code and a stable user-facing message; anything
// else is reported as ErrInternal with the cause kept in the logs.
package errors

import (
	"net/http"

	"github.com/DARSHAN2224/authentication/internal/errors"
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

// Predefined error types.
var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Please provide all the required fields",
		"",
	)

	// ErrAccountAlreadyExists is returned when registering an email that is already taken.
	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	// ErrInvalidCredentials covers both "no such account" and "wrong password".
	// The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// ErrInvalidVerificationCode covers a wrong code and an expired one alike.
	ErrInvalidVerificationCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OR_EXPIRED",
		"Invalid or expired verification code",
		"",
	)

	// ErrInvalidResetToken covers a wrong reset token and an expired one alike.
	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OR_EXPIRED",
		"Invalid or expired reset token",
		"",
	)

	// ErrUnknownEmail is returned by the password-reset request for an email
	// that has no account.
	// TODO: respond with a generic success here instead, so the endpoint stops
	// confirming whether an email is registered.
	ErrUnknownEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid email",
		"",
	)

	// ErrUnauthenticated is the single failure for a missing, tampered or
	// expired session token. It carries no hint of which check failed.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Unauthorized access",
		"",
	)

	// ErrNotFound is returned when a referenced account no longer exists.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"User not found",
		"",
	)

	// ErrInternal is the generic server-side failure. The underlying cause is
	// logged, never exposed.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
