// Package server wires services, handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"finwallet/internal/config"
	_ "finwallet/internal/docs" // Register swagger docs
	apperrors "finwallet/internal/errors"
	"finwallet/internal/handlers"
	"finwallet/internal/middleware"
	"finwallet/internal/services"
)

// New builds the application router backed by db.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	userService := services.NewUserService(db, cfg.BcryptCost)
	walletService := services.NewWalletService(db)
	transactionService := services.NewTransactionService(db, walletService)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.NoRoute(func(c *gin.Context) {
		middleware.WriteError(c, apperrors.ErrNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		middleware.WriteError(c, apperrors.ErrMethodNotAllowed)
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("/:id", userHandler.GetUser)

	wallets := v1.Group("/wallets")
	wallets.POST("", walletHandler.CreateWallet)
	wallets.GET("/:id", walletHandler.GetWallet)
	wallets.PUT("/:id", walletHandler.UpdateWallet)
	wallets.DELETE("/:id", walletHandler.DeleteWallet)
	wallets.POST("/:id/transactions", transactionHandler.CreateTransaction)
	wallets.GET("/:id/transactions", transactionHandler.GetWalletTransactions)

	transactions := v1.Group("/transactions")
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
