package persistence

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// TransactionRepository defines persistence operations for the balance
// ledger. The ledger is append-only: there is deliberately no update or
// delete operation.
type TransactionRepository interface {
	// Create appends a ledger entry and fills in its generated id
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the user's most recent ledger entries, newest
	// first, capped at limit
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)
}
