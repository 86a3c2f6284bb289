package dto

import (
	"time"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// SuccessResponse is a minimal acknowledgement body
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserResponse is the public shape of a user record
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Balance  int64  `json:"balance"`
}

// CurrentUserResponse is the body of GET /api/user
type CurrentUserResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// BalanceResponse is the body of GET /api/user/balance
type BalanceResponse struct {
	Success bool  `json:"success"`
	Balance int64 `json:"balance"`
}

// DepositResponse is the body of a successful deposit
type DepositResponse struct {
	Success    bool  `json:"success"`
	NewBalance int64 `json:"new_balance"`
}

// ServerConfigResponse is the public shape of a purchasable tier
type ServerConfigResponse struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	CPUCores     int      `json:"cpu_cores"`
	RAMGB        float64  `json:"ram_gb"`
	StorageGB    int      `json:"storage_gb"`
	StorageType  string   `json:"storage_type"`
	BandwidthGB  int      `json:"bandwidth_gb"`
	PriceMonthly int64    `json:"price_monthly"`
	MaxWebsites  int      `json:"max_websites"`
	Features     []string `json:"features"`
}

// UserServerResponse is the public shape of a purchase record
type UserServerResponse struct {
	ID         uint64    `json:"id"`
	ConfigID   uint64    `json:"config_id"`
	ServerName string    `json:"server_name"`
	Status     string    `json:"status"`
	IPAddress  string    `json:"ip_address,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransactionResponse is the public shape of a ledger entry
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	ReferenceID *uint64   `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PurchaseResponse is the body of a successful purchase
type PurchaseResponse struct {
	Success    bool               `json:"success"`
	Server     UserServerResponse `json:"server"`
	NewBalance int64              `json:"new_balance"`
}

// ExtendResponse is the body of a successful extension
type ExtendResponse struct {
	Success    bool               `json:"success"`
	Server     UserServerResponse `json:"server"`
	NewBalance int64              `json:"new_balance"`
}

// NewUserResponse converts a user entity to its public shape
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.AvatarURL,
		Balance:  user.Balance,
	}
}

// NewServerConfigResponse converts a tier entity to its public shape
func NewServerConfigResponse(config *entity.ServerConfig) ServerConfigResponse {
	features := config.Features
	if features == nil {
		features = []string{}
	}
	return ServerConfigResponse{
		ID:           config.ID,
		Name:         config.Name,
		CPUCores:     config.CPUCores,
		RAMGB:        config.RAMGB,
		StorageGB:    config.StorageGB,
		StorageType:  config.StorageType,
		BandwidthGB:  config.BandwidthGB,
		PriceMonthly: config.PriceMonthly,
		MaxWebsites:  config.MaxWebsites,
		Features:     features,
	}
}

// NewUserServerResponse converts a purchase record entity to its public shape
func NewUserServerResponse(server *entity.UserServer) UserServerResponse {
	return UserServerResponse{
		ID:         server.ID,
		ConfigID:   server.ConfigID,
		ServerName: server.ServerName,
		Status:     string(server.Status),
		IPAddress:  server.IPAddress,
		ExpiresAt:  server.ExpiresAt,
		CreatedAt:  server.CreatedAt,
	}
}

// NewTransactionResponse converts a ledger entity to its public shape
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		ReferenceID: transaction.ReferenceID,
		CreatedAt:   transaction.CreatedAt,
	}
}
