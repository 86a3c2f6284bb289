package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnauthorized        = 4010
	CodeValidation          = 4020
	CodeInsufficientBalance = 4021
	CodeConfigInactive      = 4022
	CodeUserNotFound        = 4040
	CodeConfigNotFound      = 4041
	CodeServerNotFound      = 4042

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeUpstreamAuth   = 5020
)

// Base error types
var (
	// ErrUnauthorized is returned when no valid session accompanies a request
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is returned when request input fails validation
	ErrValidation = errors.New("validation error")

	// ErrInsufficientBalance is returned when a user cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrConfigInactive is returned when a purchase targets a retired tier
	ErrConfigInactive = errors.New("server configuration is not available")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrConfigNotFound is returned when the requested server configuration doesn't exist
	ErrConfigNotFound = errors.New("server configuration not found")

	// ErrServerNotFound is returned when the requested server doesn't exist
	// or is not owned by the caller. Ownership mismatches are reported
	// identically to nonexistence so server ids don't leak.
	ErrServerNotFound = errors.New("server not found")

	// ErrSessionNotFound is returned when a session token resolves to nothing
	ErrSessionNotFound = errors.New("session not found")

	// ErrStateMismatch is returned when the OAuth callback state does not
	// match the value issued with the authorization request
	ErrStateMismatch = errors.New("authorization state mismatch")

	// ErrUpstreamAuth is returned when the identity provider rejects a
	// code exchange or profile fetch
	ErrUpstreamAuth = errors.New("identity provider request failed")

	// ErrDatabaseConnection is returned when the storage layer fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return CodeUnauthorized
	case errors.Is(err, ErrValidation), errors.Is(err, ErrStateMismatch):
		return CodeValidation
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrConfigInactive):
		return CodeConfigInactive
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrConfigNotFound):
		return CodeConfigNotFound
	case errors.Is(err, ErrServerNotFound):
		return CodeServerNotFound
	case errors.Is(err, ErrUpstreamAuth):
		return CodeUpstreamAuth
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status code it is surfaced with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrConfigInactive), errors.Is(err, ErrStateMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrConfigNotFound),
		errors.Is(err, ErrServerNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstreamAuth):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// InsufficientBalanceError carries the amounts needed to explain a rejected debit
type InsufficientBalanceError struct {
	UserID   string
	Required int64
	Current  int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %d, available %d",
		e.UserID, e.Required, e.Current)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// Missing returns the amount the user is short by
func (e *InsufficientBalanceError) Missing() int64 {
	return e.Required - e.Current
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"required":        e.Required,
		"current_balance": e.Current,
		"missing":         e.Missing(),
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID string, required, current int64) error {
	return &InsufficientBalanceError{
		UserID:   userID,
		Required: required,
		Current:  current,
	}
}

// ValidationError carries per-field messages for malformed input
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error with per-field messages
func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// AuthError wraps a failure reported by the identity provider
type AuthError struct {
	Operation string // "exchange_code" or "fetch_profile"
	Status    int    // upstream HTTP status, 0 if the request never completed
	Err       error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("identity provider %s failed with status %d: %v", e.Operation, e.Status, e.Err)
	}
	return fmt.Sprintf("identity provider %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUpstreamAuth
func (e *AuthError) Is(target error) bool {
	return target == ErrUpstreamAuth
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "upstream_auth",
		"operation":       e.Operation,
		"upstream_status": e.Status,
		"error":           e.Err.Error(),
		"error_code":      CodeUpstreamAuth,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrServerNotFound)
}
