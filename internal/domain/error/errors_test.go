package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("user-1", 200000, 100000)

	t.Run("should match the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.True(t, IsInsufficientBalanceError(err))
	})

	t.Run("should expose the missing amount", func(t *testing.T) {
		var balanceErr *InsufficientBalanceError
		assert.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, int64(200000), balanceErr.Required)
		assert.Equal(t, int64(100000), balanceErr.Current)
		assert.Equal(t, int64(100000), balanceErr.Missing())
	})

	t.Run("should carry fields for structured logging", func(t *testing.T) {
		var balanceErr *InsufficientBalanceError
		assert.ErrorAs(t, err, &balanceErr)
		fields := balanceErr.LogFields()
		assert.Equal(t, "user-1", fields["user_id"])
		assert.Equal(t, int64(100000), fields["missing"])
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{
		"server_name": "server_name must be between 3 and 50 characters",
		"months":      "months must be between 1 and 24",
	})

	assert.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
}

func TestAuthError(t *testing.T) {
	underlying := errors.New("invalid_grant")
	err := &AuthError{Operation: "exchange_code", Status: 400, Err: underlying}

	assert.ErrorIs(t, err, ErrUpstreamAuth)
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "exchange_code")
	assert.Contains(t, err.Error(), "400")
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{ErrUnauthorized, CodeUnauthorized},
		{ErrSessionNotFound, CodeUnauthorized},
		{ErrValidation, CodeValidation},
		{ErrStateMismatch, CodeValidation},
		{ErrInsufficientBalance, CodeInsufficientBalance},
		{NewInsufficientBalanceError("u", 2, 1), CodeInsufficientBalance},
		{ErrConfigInactive, CodeConfigInactive},
		{ErrUserNotFound, CodeUserNotFound},
		{ErrConfigNotFound, CodeConfigNotFound},
		{ErrServerNotFound, CodeServerNotFound},
		{ErrUpstreamAuth, CodeUpstreamAuth},
		{ErrInternalServer, CodeInternalServer},
		{errors.New("anything else"), CodeInternalServer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ErrorCode(tt.err), "error: %v", tt.err)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrValidation, http.StatusBadRequest},
		{NewInsufficientBalanceError("u", 2, 1), http.StatusBadRequest},
		{ErrConfigInactive, http.StatusBadRequest},
		{ErrServerNotFound, http.StatusNotFound},
		{ErrConfigNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrUpstreamAuth, http.StatusBadGateway},
		{ErrDatabaseConnection, http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrServerNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HTTPStatus(tt.err), "error: %v", tt.err)
	}
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrConfigNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("context: %w", ErrServerNotFound)))
	assert.False(t, IsNotFoundError(ErrUnauthorized))
}
