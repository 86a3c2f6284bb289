package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection holds the database handle and its configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// NewConnection establishes a new database connection with the given configuration
func NewConnection(config *Config) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	logLevel := logger.Warn
	switch config.LogLevel {
	case "debug", "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{
		DB:     db,
		Config: config,
	}, nil
}

// NewConnectionWithRetry keeps attempting to connect, backing off between
// attempts. Useful at startup when the database container is still warming up.
func NewConnectionWithRetry(ctx context.Context, config *Config, log coreport.Logger) (*Connection, error) {
	var conn *Connection
	var err error

	attempts := config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err = NewConnection(config)
		if err == nil {
			if attempt > 1 {
				log.Info("Database connection established after retry", map[string]any{
					"attempt": attempt,
				})
			}
			return conn, nil
		}

		if !isRetryableConnectError(err) || attempt == attempts {
			break
		}

		log.Warn("Database connection failed, retrying", map[string]any{
			"attempt":     attempt,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": config.RetryDelay.String(),
		})

		select {
		case <-time.After(config.RetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, err
}

// isRetryableConnectError checks whether a connection error is worth retrying
func isRetryableConnectError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "eof")
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
