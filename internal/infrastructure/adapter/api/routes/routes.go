package routes

import (
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	sessionport "github.com/whitecat-hosting/whitecat/internal/domain/port/session"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/handler"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything SetupRoutes needs to wire the API
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Server  *handler.ServerHandler
	Contact *handler.ContactHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	sessions sessionport.Store,
	cookieName string,
) {
	router.GET("/health", handlers.Health.Health)

	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/discord", handlers.Auth.Login)
		authRoutes.GET("/discord/callback", handlers.Auth.Callback)
		authRoutes.POST("/logout", handlers.Auth.Logout)
	}

	api := router.Group("/api")
	{
		api.GET("/user", middleware.OptionalAuth(sessions, cookieName), handlers.User.CurrentUser)

		api.GET("/configs", handlers.Server.ListConfigs)
		api.GET("/configs/:id", handlers.Server.GetConfig)

		api.POST("/contact", handlers.Contact.Submit)

		protected := api.Group("/user", middleware.RequireAuth(sessions, cookieName))
		{
			protected.GET("/balance", handlers.User.GetBalance)
			protected.POST("/deposit", handlers.User.Deposit)
			protected.GET("/transactions", handlers.User.Transactions)
			protected.GET("/servers", handlers.User.Servers)
			protected.POST("/servers", handlers.User.PurchaseServer)
			protected.POST("/servers/:id/extend", handlers.User.ExtendServer)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
