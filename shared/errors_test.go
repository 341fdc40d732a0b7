package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorKinds(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		name   string
		err    *AppError
		kind   error
		status int
	}{
		{"bad request", NewBadRequestError(cause, "bad"), ErrValidation, http.StatusBadRequest},
		{"validation", NewValidationError(cause, "invalid", []string{"x"}), ErrValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError(cause, "missing"), ErrNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError(nil, "nope"), ErrUnauthorized, http.StatusUnauthorized},
		{"rate limited", NewTooManyRequestsError(nil, "slow down"), ErrRateLimited, http.StatusTooManyRequests},
		{"storage", NewInternalError(cause, "Database error"), ErrStorage, http.StatusInternalServerError},
		{"unavailable", NewServiceUnavailableError(cause, "down"), ErrUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.kind)
			assert.Equal(t, tc.status, tc.err.StatusCode)
			assert.Equal(t, tc.kind, tc.err.Kind())

			for _, other := range []error{ErrValidation, ErrNotFound, ErrUnauthorized, ErrRateLimited, ErrStorage, ErrUnavailable} {
				if other != tc.kind {
					assert.NotErrorIs(t, tc.err, other)
				}
			}
		})
	}
}

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError(cause, "Database error")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Database error: connection reset", err.Error())
	assert.Equal(t, "missing", NewNotFoundError(nil, "missing").Error())
}

func TestGetAppErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create session: %w", NewUnauthorizedError(nil, "Invalid passcode"))

	appErr, ok := GetAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	assert.ErrorIs(t, wrapped, ErrUnauthorized)

	_, ok = GetAppError(errors.New("plain"))
	assert.False(t, ok)
}
