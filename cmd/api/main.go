package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/mazebank/transaction-service/internal/domain/usecase/auth"
	receiptUseCase "github.com/mazebank/transaction-service/internal/domain/usecase/receipt"
	registerUseCase "github.com/mazebank/transaction-service/internal/domain/usecase/register"
	transferUseCase "github.com/mazebank/transaction-service/internal/domain/usecase/transfer"
	userUseCase "github.com/mazebank/transaction-service/internal/domain/usecase/user"

	domainmail "github.com/mazebank/transaction-service/internal/domain/port/mail"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/handler"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/routes"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/database"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/logger"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/mail"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/mazebank/transaction-service/internal/infrastructure/adapter/time"
	"github.com/mazebank/transaction-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	clock := timeProvider.NewRealTimeProvider()

	conn, err := database.Connect(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	procedures := repository.NewBankProcedures(conn.DB, appLogger)

	// The mail capability is optional. Without SMTP credentials the service
	// still serves transfers; only receipt requests are rejected.
	var mailer domainmail.Mailer
	if cfg.Mail.Configured() {
		smtpMailer, err := mail.NewSMTPMailer(cfg.Mail, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize mailer", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		mailer = smtpMailer
	} else {
		appLogger.Warn("SMTP credentials missing, receipt delivery disabled", nil)
	}

	authService := authUseCase.NewService(userRepo, appLogger)
	registerService := registerUseCase.NewService(procedures, appLogger)
	transferService := transferUseCase.NewService(procedures, clock, appLogger)
	receiptService := receiptUseCase.NewService(mailer, appLogger)
	userService := userUseCase.NewService(userRepo, procedures, appLogger)

	authHandler := handler.NewAuthHandler(authService, appLogger)
	registerHandler := handler.NewRegisterHandler(registerService, appLogger)
	transferHandler := handler.NewTransferHandler(transferService, appLogger)
	receiptHandler := handler.NewReceiptHandler(receiptService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	healthHandler := handler.NewHealthHandler(conn.DB, clock, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router,
		authHandler,
		registerHandler,
		transferHandler,
		receiptHandler,
		userHandler,
		healthHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

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
