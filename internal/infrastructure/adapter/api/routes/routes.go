package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/handler"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API. Paths match what the
// banking client already calls, including the Spanish-named ones.
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	registerHandler *handler.RegisterHandler,
	transferHandler *handler.TransferHandler,
	receiptHandler *handler.ReceiptHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	router.POST("/login", authHandler.Login)
	router.POST("/register", registerHandler.Register)
	router.POST("/transaction", transferHandler.Transfer)
	router.POST("/dataUser", userHandler.DataUser)
	router.POST("/fechaCargo", userHandler.LastChargeDate)

	router.POST("/api/enviar-comprobante", receiptHandler.SendReceipt)

	router.GET("/health", healthHandler.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Order matters: the request id must exist before anything logs it.
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
