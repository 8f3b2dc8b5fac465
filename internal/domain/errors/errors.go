// Package errors defines the application error taxonomy. Every business-rule
// violation is a typed AppError carrying its HTTP status, a stable business
// code, and the user-facing message; nothing else crosses the service boundary.
package errors

import (
	"net/http"

	"centinela/internal/errors"
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

// Predefined error types. The user-facing messages match the public API of the
// original service, so existing clients keep seeing the exact same strings.
var (
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Faltan datos requeridos.",
		"",
	)

	ErrMissingLoginFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Faltan datos para autenticación.",
		"",
	)

	ErrMissingRecoveryFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Faltan datos para recuperación.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"El usuario ya existe.",
		"",
	)

	// ErrInvalidCredentials deliberately collapses unknown-user and
	// wrong-password so responses cannot be used for user enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o contraseña incorrectos.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado.",
		"",
	)

	ErrIncorrectAnswer = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_ANSWER",
		"Respuesta incorrecta.",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Refresh token requerido.",
		"",
	)

	// ErrInvalidToken collapses malformed, expired, bad-signature and
	// issuer/audience mismatch into one outcome.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Refresh token inválido o expirado.",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error en el servidor.",
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

// Message returns the user-friendly error message. Store failures surface to
// the caller as the generic server error, never the database detail.
func (e *DatabaseExecuteError) Message() string {
	return "Error en el servidor."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
