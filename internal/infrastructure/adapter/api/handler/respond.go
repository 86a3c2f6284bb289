package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeError maps a domain error to its HTTP status and JSON envelope.
// Detailed errors keep their payload; unexpected ones are logged and
// collapsed to a generic 500 so internals don't leak.
func writeError(c *gin.Context, logger coreport.Logger, err error) {
	var balanceErr *domainerr.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		c.JSON(http.StatusBadRequest, dto.InsufficientBalanceResponse{
			Success:  false,
			Error:    "Insufficient balance",
			Code:     domainerr.CodeInsufficientBalance,
			Required: balanceErr.Required,
			Current:  balanceErr.Current,
			Missing:  balanceErr.Missing(),
		})
		return
	}

	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Validation failed",
			Code:    domainerr.CodeValidation,
			Details: validationErr.Fields,
		})
		return
	}

	status := domainerr.HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    domainerr.ErrorCode(err),
	})
}

// bindJSON binds and validates the request body, writing the validation
// envelope itself on failure. Returns false when the request was rejected.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Validation failed",
			Code:    domainerr.CodeValidation,
			Details: bindingErrorDetails(err),
		})
		return false
	}
	return true
}

// bindingErrorDetails turns validator failures into per-field messages
func bindingErrorDetails(err error) map[string]string {
	details := map[string]string{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		details["body"] = "invalid request body"
		return details
	}

	for _, fieldErr := range fieldErrs {
		field := snakeCase(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			details[field] = fmt.Sprintf("%s is required", field)
		case "gt":
			details[field] = fmt.Sprintf("%s must be greater than %s", field, fieldErr.Param())
		case "min":
			details[field] = fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
		case "max":
			details[field] = fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
		case "email":
			details[field] = fmt.Sprintf("%s must be a valid email address", field)
		default:
			details[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return details
}

// snakeCase converts a struct field name to its JSON form (ServerName -> server_name)
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
