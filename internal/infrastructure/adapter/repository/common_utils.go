package repository

import (
	"strings"
)

// Postgres SQLSTATE prefixes the driver embeds in its error strings
const (
	sqlStateUniqueViolation     = "SQLSTATE 23505"
	sqlStateForeignKeyViolation = "SQLSTATE 23503"
)

// ErrorClassifier inspects driver error strings to classify failures that
// GORM does not surface as typed errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), sqlStateUniqueViolation) ||
		strings.Contains(err.Error(), "duplicate key")
}

// IsForeignKeyError checks if the error is a foreign key violation
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), sqlStateForeignKeyViolation) ||
		strings.Contains(err.Error(), "violates foreign key constraint")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "broken pipe")
}
