package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("resource conflict")
	ErrBadRequest = errors.New("bad request")
)

// Error codes returned to API clients
const (
	CodeValidation    = "ERR_VALIDATION"
	CodeNotFound      = "ERR_NOT_FOUND"
	CodeConflict      = "ERR_CONFLICT"
	CodeBadRequest    = "ERR_BAD_REQUEST"
	CodeInternalError = "ERR_INTERNAL"
)

// AppError represents an application error with an HTTP status and error kind
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying kind so callers can branch with errors.Is
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation reports a field constraint violation
func Validation(field, reason string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, field+": "+reason, ErrValidation)
}

// NotFound reports a missing resource
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// NotFoundID reports a missing resource by kind and identifier
func NotFoundID(kind string, id uint) *AppError {
	return NotFound(fmt.Sprintf("%s with ID %d not found", kind, id))
}

// Conflict reports a uniqueness violation
func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

// BadRequest reports malformed input outside field validation
func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrBadRequest)
}

// InternalError wraps an unexpected failure without leaking detail to the caller
func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// WithPath prefixes an error's message with the owning field or relationship
// path, preserving its status and kind. Non-AppError values are wrapped as
// internal errors first.
func WithPath(path string, err error) *AppError {
	appErr := From(err)
	return &AppError{
		Status:  appErr.Status,
		Code:    appErr.Code,
		Message: path + ": " + appErr.Message,
		Err:     appErr.Err,
	}
}

// From converts any error to an AppError, defaulting to internal
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError(err)
}
