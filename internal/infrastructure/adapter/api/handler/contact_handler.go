package handler

import (
	"net/http"

	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form submissions. Submissions are validated
// and logged for the support team; nothing is persisted.
type ContactHandler struct {
	logger coreport.Logger
}

// NewContactHandler creates a new contact handler instance
func NewContactHandler(logger coreport.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

// Submit handles the POST /api/contact endpoint
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	h.logger.Info("Contact form submission", map[string]any{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"message": req.Message,
		"ip":      c.ClientIP(),
	})

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Thank you for contacting us. We will get back to you soon.",
	})
}
