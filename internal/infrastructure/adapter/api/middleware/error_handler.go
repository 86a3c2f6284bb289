package middleware

import (
	"net/http"
	"runtime/debug"

	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from handler panics and answers with the standard
// error envelope instead of a dropped connection
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":     err,
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
					"stack":     string(debug.Stack()),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Success: false,
					Error:   "Internal server error",
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				})
			}
		}()

		c.Next()
	}
}
