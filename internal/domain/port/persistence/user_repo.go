package persistence

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// UserRepository defines persistence operations for users and their balances
type UserRepository interface {
	// GetByID retrieves a user by their identity-provider id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user on first login or refreshes the mutable
	// profile fields on every later login. The balance is never touched:
	// new rows start at zero, existing rows keep theirs.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)

	// GetBalance returns the user's current balance
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this id exists
	GetBalance(ctx context.Context, id string) (int64, error)

	// AdjustBalance atomically adds delta to the balance in a single
	// statement so concurrent debits on the same user cannot lose updates.
	// A debit that would drive the balance negative fails with
	// ErrInsufficientBalance and leaves the row unchanged.
	// Returns the post-adjustment balance.
	AdjustBalance(ctx context.Context, id string, delta int64) (int64, error)

	// Delete removes the user. Owned servers and ledger rows cascade at
	// the storage layer.
	Delete(ctx context.Context, id string) error
}
