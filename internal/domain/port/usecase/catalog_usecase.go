package usecase

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// CatalogUseCase exposes the purchasable tier catalog
type CatalogUseCase interface {
	// ListConfigs returns the active tiers ordered by monthly price
	ListConfigs(ctx context.Context) ([]*entity.ServerConfig, error)

	// GetConfig returns a single tier by id
	GetConfig(ctx context.Context, id uint64) (*entity.ServerConfig, error)
}
