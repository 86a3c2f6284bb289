package persistence

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// UserServerRepository defines persistence operations for purchase records
type UserServerRepository interface {
	// GetByID retrieves a purchase record by id
	//
	// Possible errors:
	// - ErrServerNotFound: if no record with this id exists
	GetByID(ctx context.Context, id uint64) (*entity.UserServer, error)

	// ListByUser returns the user's servers, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.UserServer, error)

	// Create inserts a new purchase record and fills in its generated id
	Create(ctx context.Context, server *entity.UserServer) error

	// Extend atomically adds calendar months to the record's expiry
	//
	// Possible errors:
	// - ErrServerNotFound: if no record with this id exists
	Extend(ctx context.Context, id uint64, months int) (*entity.UserServer, error)

	// UpdateStatus applies an administrative lifecycle transition
	UpdateStatus(ctx context.Context, id uint64, status entity.ServerStatus) error

	// FindExpired returns active servers whose expiry is in the past.
	// Polling contract for an external expiry-sweep job.
	FindExpired(ctx context.Context) ([]*entity.UserServer, error)
}
