package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/dto"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account, balance and server endpoints
type UserHandler struct {
	authUseCase    usecase.AuthUseCase
	billingUseCase usecase.BillingUseCase
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	authUseCase usecase.AuthUseCase,
	billingUseCase usecase.BillingUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		authUseCase:    authUseCase,
		billingUseCase: billingUseCase,
		logger:         logger,
	}
}

// CurrentUser handles the GET /api/user endpoint. It runs behind OptionalAuth,
// so an anonymous visitor gets {authenticated:false} instead of a 401.
func (h *UserHandler) CurrentUser(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)
	if token == "" {
		c.JSON(http.StatusOK, dto.CurrentUserResponse{Authenticated: false})
		return
	}

	user, err := h.authUseCase.CurrentUser(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, dto.CurrentUserResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, dto.CurrentUserResponse{
		Authenticated: true,
		User:          dto.NewUserResponse(user),
	})
}

// GetBalance handles the GET /api/user/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	balance, err := h.billingUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Success: true, Balance: balance})
}

// Deposit handles the POST /api/user/deposit endpoint
func (h *UserHandler) Deposit(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	newBalance, err := h.billingUseCase.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DepositResponse{Success: true, NewBalance: newBalance})
}

// Transactions handles the GET /api/user/transactions endpoint
func (h *UserHandler) Transactions(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			writeError(c, h.logger, domainerr.NewValidationError(map[string]string{
				"limit": "limit must be a non-negative integer",
			}))
			return
		}
		limit = parsed
	}

	transactions, err := h.billingUseCase.Transactions(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, dto.NewTransactionResponse(transaction))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": responses})
}

// Servers handles the GET /api/user/servers endpoint
func (h *UserHandler) Servers(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	servers, err := h.billingUseCase.Servers(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	responses := make([]dto.UserServerResponse, 0, len(servers))
	for _, server := range servers {
		responses = append(responses, dto.NewUserServerResponse(server))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "servers": responses})
}

// PurchaseServer handles the POST /api/user/servers endpoint
func (h *UserHandler) PurchaseServer(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.PurchaseServerRequest
	if !bindJSON(c, &req) {
		return
	}

	months := req.Months
	if months == 0 {
		months = 1
	}

	result, err := h.billingUseCase.PurchaseServer(c.Request.Context(), userID, req.ConfigID, req.ServerName, months)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{
		Success:    true,
		Server:     dto.NewUserServerResponse(result.Server),
		NewBalance: result.NewBalance,
	})
}

// ExtendServer handles the POST /api/user/servers/:id/extend endpoint
func (h *UserHandler) ExtendServer(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	serverID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, h.logger, domainerr.NewValidationError(map[string]string{
			"id": "server id must be a positive integer",
		}))
		return
	}

	var req dto.ExtendServerRequest
	if !bindJSON(c, &req) {
		return
	}

	months := req.Months
	if months == 0 {
		months = 1
	}

	result, err := h.billingUseCase.ExtendServer(c.Request.Context(), userID, serverID, months)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExtendResponse{
		Success:    true,
		Server:     dto.NewUserServerResponse(result.Server),
		NewBalance: result.NewBalance,
	})
}
