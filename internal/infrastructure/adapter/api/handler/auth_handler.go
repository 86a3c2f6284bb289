package handler

import (
	"errors"
	"net/http"
	"time"

	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthCookieConfig holds the session cookie settings
type AuthCookieConfig struct {
	Name          string
	MaxAge        time.Duration // Authenticated session lifetime
	PreAuthMaxAge time.Duration // Lifetime of the cookie covering the OAuth round trip
	Secure        bool
}

// AuthHandler handles the OAuth login flow endpoints
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookies     AuthCookieConfig
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, cookies AuthCookieConfig, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookies:     cookies,
		logger:      logger,
	}
}

// Login handles the GET /auth/discord endpoint. It issues a pre-auth session
// carrying the anti-forgery state and redirects to the identity provider.
func (h *AuthHandler) Login(c *gin.Context) {
	start, err := h.authUseCase.BeginLogin(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, start.SessionToken, h.cookies.PreAuthMaxAge)
	c.Redirect(http.StatusFound, start.AuthorizationURL)
}

// Callback handles the GET /auth/discord/callback endpoint. Failures redirect
// back to the site root with a reason slug the frontend knows how to show.
func (h *AuthHandler) Callback(c *gin.Context) {
	if providerErr := c.Query("error"); providerErr != "" {
		h.logger.Warn("Identity provider returned an error", map[string]any{
			"error": providerErr,
		})
		c.Redirect(http.StatusFound, "/?error=discord_auth_failed")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/?error=no_code")
		return
	}

	preAuthToken, _ := c.Cookie(h.cookies.Name)
	token, err := h.authUseCase.CompleteLogin(c.Request.Context(), preAuthToken, code, c.Query("state"))
	if err != nil {
		if errors.Is(err, domainerr.ErrStateMismatch) {
			c.Redirect(http.StatusFound, "/?error=state_mismatch")
			return
		}
		c.Redirect(http.StatusFound, "/?error=auth_failed")
		return
	}

	h.setSessionCookie(c, token, h.cookies.MaxAge)
	c.Redirect(http.StatusFound, "/?login=success")
}

// Logout handles the POST /auth/logout endpoint
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookies.Name); err == nil && token != "" {
		h.authUseCase.Logout(c.Request.Context(), token)
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// setSessionCookie writes the session cookie with the given lifetime
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookies.Name, token, int(maxAge.Seconds()), "/", "", h.cookies.Secure, true)
}

// clearSessionCookie expires the session cookie immediately
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookies.Name, "", -1, "/", "", h.cookies.Secure, true)
}
