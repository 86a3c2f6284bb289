package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/whitecat-hosting/whitecat/internal/domain/usecase/auth"
	billingUseCase "github.com/whitecat-hosting/whitecat/internal/domain/usecase/billing"
	catalogUseCase "github.com/whitecat-hosting/whitecat/internal/domain/usecase/catalog"

	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/handler"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/routes"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/database"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/database/migration"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/discord"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/logger"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/repository"
	sessionStore "github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/session"
	timeProvider "github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/time"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.IsProduction())
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := database.DefaultConfig()
	dbConfig.Host = cfg.Database.Host
	dbConfig.Port = cfg.Database.Port
	dbConfig.Username = cfg.Database.Username
	dbConfig.Password = cfg.Database.Password
	dbConfig.Database = cfg.Database.Database
	dbConfig.SSLMode = cfg.Database.SSLMode
	dbConfig.MaxOpenConns = cfg.Database.MaxOpenConns
	dbConfig.MaxIdleConns = cfg.Database.MaxIdleConns
	dbConfig.ConnMaxLifetime = cfg.Database.ConnMaxLifetime
	dbConfig.ConnMaxIdleTime = cfg.Database.ConnMaxIdleTime
	dbConfig.LogLevel = cfg.Logger.Level
	dbConfig.RetryAttempts = cfg.Database.RetryAttempts
	dbConfig.RetryDelay = cfg.Database.RetryDelay

	conn, err := database.NewConnectionWithRetry(context.Background(), dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations and seed the tier catalog
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	configRepo := repository.NewServerConfigRepository(conn.DB, tp, appLogger)
	serverRepo := repository.NewUserServerRepository(conn.DB, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	if err := migration.SeedServerConfigs(context.Background(), configRepo, tp, appLogger); err != nil {
		appLogger.Error("Failed to seed server configs", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Session store with background expiry sweep
	sessions := sessionStore.NewMemoryStore(cfg.Session.MaxAge, cfg.Session.CleanupInterval, tp, appLogger)
	defer sessions.Close()

	// Identity provider
	provider := discord.NewProvider(discord.Config{
		ClientID:     cfg.Discord.ClientID,
		ClientSecret: cfg.Discord.ClientSecret,
		RedirectURL:  cfg.Discord.RedirectURI,
	}, appLogger)

	// Use cases
	auth := authUseCase.NewAuthUseCase(provider, sessions, userRepo, tp, appLogger)
	billing := billingUseCase.NewService(uow, userRepo, configRepo, serverRepo, transactionRepo, tp, appLogger)
	catalog := catalogUseCase.NewCatalogUseCase(configRepo, appLogger)

	// API handlers
	handlers := routes.Handlers{
		Health: handler.NewHealthHandler(tp),
		Auth: handler.NewAuthHandler(auth, handler.AuthCookieConfig{
			Name:          cfg.Session.CookieName,
			MaxAge:        cfg.Session.MaxAge,
			PreAuthMaxAge: cfg.Session.PreAuthMaxAge,
			Secure:        cfg.Session.CookieSecure || cfg.IsProduction(),
		}, appLogger),
		User:    handler.NewUserHandler(auth, billing, appLogger),
		Server:  handler.NewServerHandler(catalog, appLogger),
		Contact: handler.NewContactHandler(appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, sessions, cfg.Session.CookieName)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
