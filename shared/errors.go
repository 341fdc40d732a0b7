package shared

import (
	"errors"
	"net/http"
)

// Error kinds. Every AppError carries exactly one of these so callers can
// branch with errors.Is without inspecting status codes.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrStorage      = errors.New("storage error")
	ErrUnavailable  = errors.New("service unavailable")
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}

	kind error
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	return e.kind == target
}

func (e *AppError) Kind() error {
	return e.kind
}

func newAppError(kind error, statusCode int, err error, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		kind:       kind,
		Err:        err,
	}
}

func NewBadRequestError(err error, message string) *AppError {
	return newAppError(ErrValidation, http.StatusBadRequest, err, message)
}

func NewValidationError(err error, message string, details interface{}) *AppError {
	appErr := newAppError(ErrValidation, http.StatusBadRequest, err, message)
	appErr.Data = details
	return appErr
}

func NewNotFoundError(err error, message string) *AppError {
	return newAppError(ErrNotFound, http.StatusNotFound, err, message)
}

func NewUnauthorizedError(err error, message string) *AppError {
	return newAppError(ErrUnauthorized, http.StatusUnauthorized, err, message)
}

func NewTooManyRequestsError(err error, message string) *AppError {
	return newAppError(ErrRateLimited, http.StatusTooManyRequests, err, message)
}

// NewInternalError wraps a storage fault. Message is what the client sees;
// err is kept for logging only.
func NewInternalError(err error, message string) *AppError {
	return newAppError(ErrStorage, http.StatusInternalServerError, err, message)
}

func NewServiceUnavailableError(err error, message string) *AppError {
	return newAppError(ErrUnavailable, http.StatusServiceUnavailable, err, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
