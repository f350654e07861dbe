package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found, or that it exists
// outside the caller's visibility.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a uniqueness or referential constraint breach reported by storage.
var ErrConflict = errors.New("constraint violation")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = ErrConflict

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthenticated")

// ErrForbidden indicates an authenticated actor that is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition indicates a state machine rule violation.
var ErrInvalidTransition = errors.New("invalid transition")

// AppError carries an HTTP-mappable code, a caller-safe message and, for validation
// failures, the offending field. The wrapped Err is never serialized.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
	kind    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the taxonomy sentinel and the underlying cause to errors.Is/As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError wraps an unexpected failure. It maps to a generic server fault.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

// NewFieldValidationError reports a validation failure tied to a request field.
func NewFieldValidationError(field, message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Field: field, kind: ErrValidation}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, kind: ErrNotFound}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, kind: ErrConflict}
}

// NewFieldConflictError reports a unique constraint breach on a specific field.
func NewFieldConflictError(field, message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Field: field, kind: ErrConflict}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, kind: ErrForbidden}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, kind: ErrUnauthorized}
}

func NewInvalidTransitionError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, kind: ErrInvalidTransition}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}

// FieldOf returns the offending field of a validation or conflict error, if any.
func FieldOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// MessageOf returns the caller-safe message of an AppError, or the error text otherwise.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
