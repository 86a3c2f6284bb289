package usecase

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// PurchaseResult is returned by a successful purchase
type PurchaseResult struct {
	Server     *entity.UserServer
	NewBalance int64
}

// ExtendResult is returned by a successful extension
type ExtendResult struct {
	Server     *entity.UserServer
	NewBalance int64
}

// BillingUseCase defines balance and purchase operations. Debits, record
// writes and ledger appends happen inside one storage transaction.
type BillingUseCase interface {
	// GetBalance returns the user's current balance
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Deposit credits the balance and appends a deposit ledger entry.
	// Returns the new balance.
	Deposit(ctx context.Context, userID string, amount int64) (int64, error)

	// PurchaseServer debits totalPrice, creates the purchase record with
	// an expiry months calendar months out, and appends a purchase ledger
	// entry referencing the new record.
	//
	// Possible errors:
	// - ErrConfigNotFound: unknown tier
	// - ErrConfigInactive: tier retired from sale
	// - ErrInsufficientBalance: balance < price_monthly × months
	PurchaseServer(ctx context.Context, userID string, configID uint64, serverName string, months int) (*PurchaseResult, error)

	// ExtendServer debits totalPrice and pushes the expiry out by months
	// calendar months. A server not owned by the caller fails
	// ErrServerNotFound, indistinguishable from a nonexistent id.
	ExtendServer(ctx context.Context, userID string, serverID uint64, months int) (*ExtendResult, error)

	// Transactions returns the user's most recent ledger entries
	Transactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// Servers returns the user's purchase records
	Servers(ctx context.Context, userID string) ([]*entity.UserServer, error)
}
