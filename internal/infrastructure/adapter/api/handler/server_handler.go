package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ServerHandler handles the public tier catalog endpoints
type ServerHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         coreport.Logger
}

// NewServerHandler creates a new server catalog handler instance
func NewServerHandler(catalogUseCase usecase.CatalogUseCase, logger coreport.Logger) *ServerHandler {
	return &ServerHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// ListConfigs handles the GET /api/configs endpoint
func (h *ServerHandler) ListConfigs(c *gin.Context) {
	configs, err := h.catalogUseCase.ListConfigs(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	responses := make([]dto.ServerConfigResponse, 0, len(configs))
	for _, config := range configs {
		responses = append(responses, dto.NewServerConfigResponse(config))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "configs": responses})
}

// GetConfig handles the GET /api/configs/:id endpoint
func (h *ServerHandler) GetConfig(c *gin.Context) {
	configID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, h.logger, domainerr.NewValidationError(map[string]string{
			"id": "config id must be a positive integer",
		}))
		return
	}

	config, err := h.catalogUseCase.GetConfig(c.Request.Context(), configID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "config": dto.NewServerConfigResponse(config)})
}
