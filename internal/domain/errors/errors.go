package errors

import (
	"fmt"
	"net/http"

	"bizdesk/internal/errors"
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

// Is matches any BaseError carrying the same business error code, so derived
// copies (WithMessage, WithDetails) still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// WithMessage returns a copy carrying a more specific user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithMessagef is WithMessage with a format specifier.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Authentication-related errors
	ErrMissingCredential = NewBaseError(
		http.StatusForbidden,
		"MISSING_CREDENTIAL",
		"Authorization header is missing or is not a Bearer token",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Lookup errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Dispatch errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Route not found",
		"",
	)

	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// PersistenceKind classifies the backend failure behind a PersistenceError.
type PersistenceKind string

const (
	PersistenceUniqueViolation     PersistenceKind = "unique_violation"
	PersistenceForeignKeyViolation PersistenceKind = "foreign_key_violation"
	PersistenceNotNullViolation    PersistenceKind = "not_null_violation"
	PersistenceCheckViolation      PersistenceKind = "check_violation"
	PersistenceBackendFailure      PersistenceKind = "backend_failure"
)

// PersistenceError is the single error type the storage layer surfaces. The
// backend cause is kept for server-side logging and never reaches a response body.
type PersistenceError struct {
	op   string
	kind PersistenceKind
	err  error
}

// NewPersistenceError creates a persistence error for the given repository operation.
func NewPersistenceError(op string, kind PersistenceKind, err error) *PersistenceError {
	return &PersistenceError{
		op:   op,
		kind: kind,
		err:  err,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed (%s): %v", e.op, e.kind, e.err)
}

// Unwrap exposes the backend cause.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// Op returns the repository operation that failed, e.g. "companies.add".
func (e *PersistenceError) Op() string {
	return e.op
}

// Kind returns the failure classification.
func (e *PersistenceError) Kind() PersistenceKind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_ERROR"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return ErrInternalError.Message()
}

// Details is always empty: backend detail stays in the server logs.
func (e *PersistenceError) Details() string {
	return ""
}
