package middleware

import (
	"net/http"

	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	sessionport "github.com/whitecat-hosting/whitecat/internal/domain/port/session"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextSessionToken = "session_token"
	ContextUserID       = "user_id"
)

// RequireAuth resolves the session cookie and rejects the request with 401
// when it is missing, expired or never completed the login flow. Handlers
// behind it can rely on ContextUserID being set.
func RequireAuth(sessions sessionport.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		record, ok := sessions.Get(token)
		if !ok || !record.IsAuthenticated() {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextSessionToken, token)
		c.Set(ContextUserID, record.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the session cookie when present but never rejects.
// Used by endpoints whose response shape depends on login state.
func OptionalAuth(sessions sessionport.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if record, ok := sessions.Get(token); ok && record.IsAuthenticated() {
				c.Set(ContextSessionToken, token)
				c.Set(ContextUserID, record.UserID)
			}
		}
		c.Next()
	}
}

// abortUnauthorized writes the standard 401 envelope
func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Success: false,
		Error:   "Unauthorized",
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
	})
}
