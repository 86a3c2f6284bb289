package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ServerConfigRepository implements the ServerConfigRepository port using GORM
type ServerConfigRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewServerConfigRepository creates a new ServerConfigRepository instance
func NewServerConfigRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ServerConfigRepository {
	return &ServerConfigRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a config model to an entity, decoding the feature list
func (r *ServerConfigRepository) modelToEntity(configModel *model.ServerConfig) *entity.ServerConfig {
	features := []string{}
	if configModel.Features != "" {
		if err := json.Unmarshal([]byte(configModel.Features), &features); err != nil {
			r.logger.Warn("Failed to decode config features", map[string]any{
				"config_id": configModel.ID,
				"error":     err.Error(),
			})
			features = []string{}
		}
	}

	return &entity.ServerConfig{
		ID:           configModel.ID,
		Name:         configModel.Name,
		CPUCores:     configModel.CPUCores,
		RAMGB:        configModel.RAMGB,
		StorageGB:    configModel.StorageGB,
		StorageType:  configModel.StorageType,
		BandwidthGB:  configModel.BandwidthGB,
		PriceMonthly: configModel.PriceMonthly,
		MaxWebsites:  configModel.MaxWebsites,
		Features:     features,
		IsActive:     configModel.IsActive,
		CreatedAt:    configModel.CreatedAt,
		UpdatedAt:    configModel.UpdatedAt,
	}
}

// entityToModel converts a config entity to a model, encoding the feature list
func (r *ServerConfigRepository) entityToModel(config *entity.ServerConfig) (*model.ServerConfig, error) {
	features := config.Features
	if features == nil {
		features = []string{}
	}
	encoded, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("encoding config features: %w", err)
	}

	return &model.ServerConfig{
		ID:           config.ID,
		Name:         config.Name,
		CPUCores:     config.CPUCores,
		RAMGB:        config.RAMGB,
		StorageGB:    config.StorageGB,
		StorageType:  config.StorageType,
		BandwidthGB:  config.BandwidthGB,
		PriceMonthly: config.PriceMonthly,
		MaxWebsites:  config.MaxWebsites,
		Features:     string(encoded),
		IsActive:     config.IsActive,
		CreatedAt:    config.CreatedAt,
		UpdatedAt:    config.UpdatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *ServerConfigRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrConfigNotFound
	}

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a tier by id
func (r *ServerConfigRepository) GetByID(ctx context.Context, id uint64) (*entity.ServerConfig, error) {
	var configModel model.ServerConfig
	result := r.db.WithContext(ctx).First(&configModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting config", result.Error, map[string]any{"config_id": id})
	}
	return r.modelToEntity(&configModel), nil
}

// GetByName retrieves a tier by its unique name
func (r *ServerConfigRepository) GetByName(ctx context.Context, name string) (*entity.ServerConfig, error) {
	var configModel model.ServerConfig
	result := r.db.WithContext(ctx).First(&configModel, "name = ?", name)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting config by name", result.Error, map[string]any{"name": name})
	}
	return r.modelToEntity(&configModel), nil
}

// ListActive returns the active tiers ordered by monthly price
func (r *ServerConfigRepository) ListActive(ctx context.Context) ([]*entity.ServerConfig, error) {
	var configModels []model.ServerConfig
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_monthly ASC").
		Find(&configModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing active configs", result.Error, nil)
	}

	configs := make([]*entity.ServerConfig, 0, len(configModels))
	for i := range configModels {
		configs = append(configs, r.modelToEntity(&configModels[i]))
	}
	return configs, nil
}

// List returns every tier including inactive ones
func (r *ServerConfigRepository) List(ctx context.Context) ([]*entity.ServerConfig, error) {
	var configModels []model.ServerConfig
	result := r.db.WithContext(ctx).Order("price_monthly ASC").Find(&configModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing configs", result.Error, nil)
	}

	configs := make([]*entity.ServerConfig, 0, len(configModels))
	for i := range configModels {
		configs = append(configs, r.modelToEntity(&configModels[i]))
	}
	return configs, nil
}

// Create inserts a new tier definition
func (r *ServerConfigRepository) Create(ctx context.Context, config *entity.ServerConfig) error {
	configModel, err := r.entityToModel(config)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(configModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.NewValidationError(map[string]string{"name": "a config with this name already exists"})
		}
		return r.handleDatabaseError("creating config", err, map[string]any{"name": config.Name})
	}

	config.ID = configModel.ID
	r.logger.Info("Server config created", map[string]any{
		"config_id": configModel.ID,
		"name":      configModel.Name,
	})
	return nil
}

// Update applies an administrative edit to an existing tier
func (r *ServerConfigRepository) Update(ctx context.Context, config *entity.ServerConfig) error {
	configModel, err := r.entityToModel(config)
	if err != nil {
		return err
	}
	configModel.UpdatedAt = r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.ServerConfig{}).
		Where("id = ?", config.ID).
		Updates(map[string]any{
			"name":          configModel.Name,
			"cpu_cores":     configModel.CPUCores,
			"ram_gb":        configModel.RAMGB,
			"storage_gb":    configModel.StorageGB,
			"storage_type":  configModel.StorageType,
			"bandwidth_gb":  configModel.BandwidthGB,
			"price_monthly": configModel.PriceMonthly,
			"max_websites":  configModel.MaxWebsites,
			"features":      configModel.Features,
			"is_active":     configModel.IsActive,
			"updated_at":    configModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating config", result.Error, map[string]any{"config_id": config.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrConfigNotFound
	}
	return nil
}
