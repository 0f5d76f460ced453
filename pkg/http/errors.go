package http

import (
	"fmt"
	"net/http"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// ValidationError creates a 400 error for missing or invalid request parameters.
func ValidationError(message string) *AppError {
	return NewAppError("ERR_VALIDATION", message, http.StatusBadRequest)
}

// ValidationErrorf creates a 400 error with formatting.
func ValidationErrorf(format string, a ...interface{}) *AppError {
	return ValidationError(fmt.Sprintf(format, a...))
}

// NotFoundError creates a 404 error for a ticker the upstream cannot resolve.
func NotFoundError(message string) *AppError {
	return NewAppError("ERR_NOT_FOUND", message, http.StatusNotFound)
}

// NotFoundErrorf creates a 404 error with formatting.
func NotFoundErrorf(format string, a ...interface{}) *AppError {
	return NotFoundError(fmt.Sprintf(format, a...))
}

// IncompleteDataError creates a 404 error for a resolvable ticker that lacks
// the price or market-cap fields the comparison needs.
func IncompleteDataError(message string) *AppError {
	return NewAppError("ERR_INCOMPLETE_DATA", message, http.StatusNotFound)
}

// UpstreamUnavailableError creates a 500 error for an unreachable or erroring
// quote provider.
func UpstreamUnavailableError(message string) *AppError {
	return NewAppError("ERR_UPSTREAM_UNAVAILABLE", message, http.StatusInternalServerError)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", message, http.StatusInternalServerError)
}

// InternalErrorf creates a 500 error with formatting.
func InternalErrorf(format string, a ...interface{}) *AppError {
	return InternalError(fmt.Sprintf(format, a...))
}
