package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserServerRepository implements the UserServerRepository port using GORM
type UserServerRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserServerRepository creates a new UserServerRepository instance
func NewUserServerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserServerRepository {
	return &UserServerRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a server model to an entity
func (r *UserServerRepository) modelToEntity(serverModel *model.UserServer) *entity.UserServer {
	return &entity.UserServer{
		ID:         serverModel.ID,
		UserID:     serverModel.UserID,
		ConfigID:   serverModel.ConfigID,
		ServerName: serverModel.ServerName,
		Status:     entity.ServerStatus(serverModel.Status),
		IPAddress:  serverModel.IPAddress,
		ExpiresAt:  serverModel.ExpiresAt,
		CreatedAt:  serverModel.CreatedAt,
		UpdatedAt:  serverModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserServerRepository) handleDatabaseError(operation string, err error, serverID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrServerNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"server_id": serverID,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a purchase record by id
func (r *UserServerRepository) GetByID(ctx context.Context, id uint64) (*entity.UserServer, error) {
	var serverModel model.UserServer
	result := r.db.WithContext(ctx).First(&serverModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting server", result.Error, id)
	}
	return r.modelToEntity(&serverModel), nil
}

// ListByUser returns the user's servers, newest first
func (r *UserServerRepository) ListByUser(ctx context.Context, userID string) ([]*entity.UserServer, error) {
	var serverModels []model.UserServer
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&serverModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing servers", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	servers := make([]*entity.UserServer, 0, len(serverModels))
	for i := range serverModels {
		servers = append(servers, r.modelToEntity(&serverModels[i]))
	}
	return servers, nil
}

// Create inserts a new purchase record and fills in its generated id
func (r *UserServerRepository) Create(ctx context.Context, server *entity.UserServer) error {
	serverModel := model.UserServer{
		UserID:     server.UserID,
		ConfigID:   server.ConfigID,
		ServerName: server.ServerName,
		Status:     string(server.Status),
		IPAddress:  server.IPAddress,
		ExpiresAt:  server.ExpiresAt,
		CreatedAt:  server.CreatedAt,
		UpdatedAt:  server.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&serverModel).Error; err != nil {
		r.logger.Error("Database error when creating server", map[string]any{
			"user_id":   server.UserID,
			"config_id": server.ConfigID,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	server.ID = serverModel.ID
	r.logger.Info("Server record created", map[string]any{
		"server_id":   serverModel.ID,
		"user_id":     serverModel.UserID,
		"server_name": serverModel.ServerName,
	})
	return nil
}

// Extend atomically adds calendar months to the record's expiry. The row is
// locked for the duration so a concurrent extension cannot read a stale
// expiry; callers run this inside a unit of work.
func (r *UserServerRepository) Extend(ctx context.Context, id uint64, months int) (*entity.UserServer, error) {
	var serverModel model.UserServer
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&serverModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("extending server", result.Error, id)
	}

	newExpiry := entity.AddCalendarMonths(serverModel.ExpiresAt, months)
	now := r.timeProvider.Now()

	update := r.db.WithContext(ctx).Model(&model.UserServer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"expires_at": newExpiry,
			"updated_at": now,
		})
	if update.Error != nil {
		return nil, r.handleDatabaseError("extending server", update.Error, id)
	}

	serverModel.ExpiresAt = newExpiry
	serverModel.UpdatedAt = now
	return r.modelToEntity(&serverModel), nil
}

// UpdateStatus applies an administrative lifecycle transition
func (r *UserServerRepository) UpdateStatus(ctx context.Context, id uint64, status entity.ServerStatus) error {
	result := r.db.WithContext(ctx).Model(&model.UserServer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating server status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrServerNotFound
	}

	r.logger.Info("Server status updated", map[string]any{
		"server_id": id,
		"status":    string(status),
	})
	return nil
}

// FindExpired returns active servers whose expiry is in the past
func (r *UserServerRepository) FindExpired(ctx context.Context) ([]*entity.UserServer, error) {
	var serverModels []model.UserServer
	result := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", string(entity.StatusActive), r.timeProvider.Now()).
		Order("expires_at ASC").
		Find(&serverModels)
	if result.Error != nil {
		r.logger.Error("Database error when finding expired servers", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	servers := make([]*entity.UserServer, 0, len(serverModels))
	for i := range serverModels {
		servers = append(servers, r.modelToEntity(&serverModels[i]))
	}
	return servers, nil
}
