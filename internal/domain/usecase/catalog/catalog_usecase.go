package catalog

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/persistence"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
)

// CatalogUseCase exposes the purchasable tier catalog to the public API
type CatalogUseCase struct {
	configRepo persistence.ServerConfigRepository
	logger     coreport.Logger
}

// NewCatalogUseCase creates a new catalog use case instance
func NewCatalogUseCase(configRepo persistence.ServerConfigRepository, logger coreport.Logger) usecase.CatalogUseCase {
	return &CatalogUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

// ListConfigs returns the active tiers ordered by monthly price
func (u *CatalogUseCase) ListConfigs(ctx context.Context) ([]*entity.ServerConfig, error) {
	configs, err := u.configRepo.ListActive(ctx)
	if err != nil {
		u.logger.Error("Failed to list server configs", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return configs, nil
}

// GetConfig returns a single tier by id, active or not
func (u *CatalogUseCase) GetConfig(ctx context.Context, id uint64) (*entity.ServerConfig, error) {
	return u.configRepo.GetByID(ctx, id)
}
