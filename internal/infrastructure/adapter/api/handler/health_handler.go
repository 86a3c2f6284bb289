package handler

import (
	"net/http"

	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const serviceName = "whitecat-hosting"

// HealthHandler handles liveness probes
type HealthHandler struct {
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{timeProvider: timeProvider}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Timestamp: h.timeProvider.Now(),
	})
}
