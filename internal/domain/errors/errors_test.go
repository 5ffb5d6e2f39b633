package errors

import (
	"net/http"
	"testing"

	"storyhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessagePreservesAppError(t *testing.T) {
	err := ErrBlogOwnershipViolation.WrapMessage("blog 42")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "BLOG_OWNERSHIP_VIOLATION", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrBlogOwnershipViolation))
}

func TestBaseError_WithDetailsIsACopy(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")

	assert.Equal(t, "title is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.Message(), detailed.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to create blog")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create blog", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestStatusCatalogue(t *testing.T) {
	cases := map[*BaseError]int{
		ErrValidationFailed:          http.StatusBadRequest,
		ErrUnauthenticated:           http.StatusUnauthorized,
		ErrInvalidToken:              http.StatusUnauthorized,
		ErrUserNoLongerExists:        http.StatusUnauthorized,
		ErrInvalidCredentials:        http.StatusUnauthorized,
		ErrBlogOwnershipViolation:    http.StatusForbidden,
		ErrCommentOwnershipViolation: http.StatusForbidden,
		ErrBlogNotFound:              http.StatusNotFound,
		ErrCommentNotFound:           http.StatusNotFound,
		ErrUserAlreadyExists:         http.StatusConflict,
		ErrInternalError:             http.StatusInternalServerError,
	}

	for appErr, status := range cases {
		assert.Equal(t, status, appErr.HTTPCode(), appErr.ErrorCode())
	}
}
