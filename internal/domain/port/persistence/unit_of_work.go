package persistence

import (
	"context"
)

// UnitOfWork coordinates the balance debit, the purchase-record write and the
// ledger append inside one storage transaction, so a failure in any step
// rolls back the others instead of requiring a manual compensating credit.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetUserServerRepository returns a purchase-record repository bound to the current transaction
	GetUserServerRepository(ctx context.Context) UserServerRepository

	// GetTransactionRepository returns a ledger repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
