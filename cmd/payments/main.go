package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dukapay/dukapay/internal/pkg/config"
	"github.com/dukapay/dukapay/internal/pkg/database"
	"github.com/dukapay/dukapay/internal/pkg/health"
	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	natspkg "github.com/dukapay/dukapay/internal/pkg/nats"
	"github.com/dukapay/dukapay/internal/pkg/server"
	"github.com/dukapay/dukapay/services/payments"
	"github.com/dukapay/dukapay/services/payments/gateway"
	"github.com/dukapay/dukapay/services/payments/handler"
	"github.com/dukapay/dukapay/services/payments/provider"
	"github.com/dukapay/dukapay/services/payments/repository"
	"github.com/dukapay/dukapay/services/payments/risk"
	"github.com/dukapay/dukapay/services/payments/usecase"
)

func main() {
	appName := "payments-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/payments.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	paymentRepo := repository.NewPaymentRepo(configs, postgresClient.GetDB())

	// Initialize provider adapters
	cardAdapter := provider.NewCardAdapter(configs.Stripe, zapLogger)
	mmAdapter := provider.NewMobileMoneyAdapter(configs.MobileMoney, zapLogger)
	walletAdapter := provider.NewWalletAdapter(configs.Wallet, zapLogger)

	adapters := map[models.PaymentProvider]payments.ProviderAdapter{
		models.ProviderCard:        cardAdapter,
		models.ProviderMobileMoney: mmAdapter,
		models.ProviderWallet:      walletAdapter,
	}

	// Initialize risk gate and gateway
	riskGate := risk.NewGate(configs.Risk, redisClient, zapLogger)
	paymentGW := gateway.NewPaymentGW(natsClient, zapLogger)

	// Initialize UseCase
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, adapters, riskGate, paymentGW, zapLogger)

	// Initialize handler
	paymentHandler := handler.NewPaymentHandler(paymentUC, cardAdapter, mmAdapter, configs, zapLogger)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Recover())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	paymentHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
