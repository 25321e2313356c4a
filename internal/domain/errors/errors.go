package errors

import (
	"fmt"
	"net/http"

	"ucsbapi/internal/errors"
)

// Error types carried in the "type" field of every error response.
const (
	TypeEntityNotFound      = "EntityNotFoundException"
	TypeAccessDenied        = "AccessDeniedException"
	TypeAuthentication      = "AuthenticationException"
	TypeValidation          = "ValidationException"
	TypeDataIntegrity       = "DataIntegrityViolationException"
	TypeDatabaseExecute     = "DatabaseExecuteException"
	TypeInternalServerError = "InternalServerError"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Error type, e.g. "EntityNotFoundException"
	Message() string   // User-facing error message
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

// ErrorCode returns the error type
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy carrying a different message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
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

// Is matches any BaseError with the same type and status, so callers can
// errors.Is against the predefined values after WithMessage/WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.httpCode == e.httpCode && t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		TypeAccessDenied,
		"Access Denied",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		TypeAuthentication,
		"Full authentication is required to access this resource",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		TypeAuthentication,
		"Invalid or expired token",
		"",
	)

	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		TypeAuthentication,
		"Invalid Google ID token",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		TypeValidation,
		"Validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		TypeDataIntegrity,
		"Record already exists",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		TypeDatabaseExecute,
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		TypeInternalServerError,
		"Internal Server Error",
		"",
	)
)

// EntityNotFoundError reports a missing record of a named entity.
type EntityNotFoundError struct {
	Entity string
	Key    any
}

// NewEntityNotFoundError creates a not-found error for entity with the given key.
func NewEntityNotFoundError(entity string, key any) AppError {
	return &EntityNotFoundError{Entity: entity, Key: key}
}

func (e *EntityNotFoundError) Error() string {
	return e.Message()
}

func (e *EntityNotFoundError) HTTPCode() int {
	return http.StatusNotFound
}

func (e *EntityNotFoundError) ErrorCode() string {
	return TypeEntityNotFound
}

func (e *EntityNotFoundError) Message() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.Key)
}

func (e *EntityNotFoundError) Details() string {
	return ""
}

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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the error type
func (e *DatabaseExecuteError) ErrorCode() string {
	return TypeDatabaseExecute
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
