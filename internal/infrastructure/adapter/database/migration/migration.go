package migration

import (
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database schema migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates or updates the schema for every model
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.ServerConfig{},
		&model.UserServer{},
		&model.Transaction{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// createIndexes adds composite indexes AutoMigrate cannot express
func (m *MigrationManager) createIndexes() error {
	// Newest-first server listing per user
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_user_servers_user_created
		ON user_servers (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create user_servers listing index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Newest-first ledger listing per user
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_user_created
		ON transactions (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create transactions listing index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Expiry sweep over active servers only
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_user_servers_active_expiry
		ON user_servers (expires_at)
		WHERE status = 'active'
	`).Error; err != nil {
		m.logger.Error("Failed to create expiry sweep index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}
