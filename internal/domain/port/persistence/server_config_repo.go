package persistence

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// ServerConfigRepository defines persistence operations for the tier catalog.
// The catalog is read-mostly; writes are administrative.
type ServerConfigRepository interface {
	// GetByID retrieves a tier by id
	//
	// Possible errors:
	// - ErrConfigNotFound: if no tier with this id exists
	GetByID(ctx context.Context, id uint64) (*entity.ServerConfig, error)

	// GetByName retrieves a tier by its unique name
	GetByName(ctx context.Context, name string) (*entity.ServerConfig, error)

	// ListActive returns the active tiers ordered by monthly price
	ListActive(ctx context.Context) ([]*entity.ServerConfig, error)

	// List returns every tier including inactive ones
	List(ctx context.Context) ([]*entity.ServerConfig, error)

	// Create inserts a new tier definition
	Create(ctx context.Context, config *entity.ServerConfig) error

	// Update applies an administrative edit to an existing tier
	Update(ctx context.Context, config *entity.ServerConfig) error
}
