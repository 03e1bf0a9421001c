package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeInvalidCoordinate = "INVALID_COORDINATE"
	ErrCodeUnknownPieceKind  = "UNKNOWN_PIECE_KIND"
	ErrCodeMalformedGrid     = "MALFORMED_GRID"
	ErrCodeInferenceFailed   = "INFERENCE_FAILED"
	ErrCodeUnavailable       = "UNAVAILABLE"
	ErrCodeTimeout           = "TIMEOUT"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "INVALID_COORDINATE", "BAD_REQUEST")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// AsAppError returns err as an *AppError, wrapping anything else as an internal error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a new METHOD_NOT_ALLOWED error
func NewMethodNotAllowedError(method, path string) *AppError {
	return &AppError{
		Code:    ErrCodeMethodNotAllowed,
		Message: fmt.Sprintf("method %s not allowed on %s", method, path),
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidCoordinateError reports a cell code the board reader should never send.
func NewInvalidCoordinateError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCoordinate,
		Message: err.Error(),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// NewUnknownPieceKindError reports a piece label outside p, n, b, r, q, k.
func NewUnknownPieceKindError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownPieceKind,
		Message: err.Error(),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// NewMalformedGridError reports grid text that broke the 8x8 layout.
func NewMalformedGridError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedGrid,
		Message: "board could not be serialized",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewInferenceError wraps a model failure during a request.
func NewInferenceError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInferenceFailed,
		Message: "move prediction failed",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewUnavailableError reports a dependency that is not ready to serve.
func NewUnavailableError(component string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: fmt.Sprintf("%s unavailable", component),
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}
