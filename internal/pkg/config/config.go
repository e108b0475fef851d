package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dukapay/dukapay/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "payments-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Stripe config
	configs.Stripe.SecretKey = GetEnv("STRIPE_SECRET_KEY", "")
	configs.Stripe.WebhookSecret = GetEnv("STRIPE_WEBHOOK_SECRET", "")

	// Mobile money config
	configs.MobileMoney.Sandbox = GetEnvAsBool("MPESA_SANDBOX", true)
	defaultMpesaURL := "https://api.safaricom.co.ke"
	if configs.MobileMoney.Sandbox {
		defaultMpesaURL = "https://sandbox.safaricom.co.ke"
	}
	configs.MobileMoney.BaseURL = GetEnv("MPESA_BASE_URL", defaultMpesaURL)
	configs.MobileMoney.ConsumerKey = GetEnv("MPESA_CONSUMER_KEY", "")
	configs.MobileMoney.ConsumerSecret = GetEnv("MPESA_CONSUMER_SECRET", "")
	configs.MobileMoney.ShortCode = GetEnv("MPESA_SHORT_CODE", "")
	configs.MobileMoney.Passkey = GetEnv("MPESA_PASSKEY", "")
	configs.MobileMoney.CallbackURL = GetEnv("MPESA_CALLBACK_URL", "")
	configs.MobileMoney.InitiatorName = GetEnv("MPESA_INITIATOR_NAME", "")
	configs.MobileMoney.SecurityCredential = GetEnv("MPESA_SECURITY_CREDENTIAL", "")
	configs.MobileMoney.TimeoutSeconds = GetEnvAsInt("MPESA_TIMEOUT_SECONDS", 30)

	// Wallet config
	configs.Wallet.Sandbox = GetEnvAsBool("WALLET_SANDBOX", true)
	defaultWalletURL := "https://api-m.paypal.com"
	if configs.Wallet.Sandbox {
		defaultWalletURL = "https://api-m.sandbox.paypal.com"
	}
	configs.Wallet.BaseURL = GetEnv("WALLET_BASE_URL", defaultWalletURL)
	configs.Wallet.ClientID = GetEnv("WALLET_CLIENT_ID", "")
	configs.Wallet.ClientSecret = GetEnv("WALLET_CLIENT_SECRET", "")
	configs.Wallet.ReturnURL = GetEnv("WALLET_RETURN_URL", "")
	configs.Wallet.CancelURL = GetEnv("WALLET_CANCEL_URL", "")
	configs.Wallet.TimeoutSeconds = GetEnvAsInt("WALLET_TIMEOUT_SECONDS", 30)

	// Risk config
	configs.Risk.Enabled = GetEnvAsBool("RISK_ENABLED", false)
	configs.Risk.BlockThreshold = GetEnvAsInt("RISK_BLOCK_THRESHOLD", 75)
	configs.Risk.ChallengeThreshold = GetEnvAsInt("RISK_CHALLENGE_THRESHOLD", 50)
	configs.Risk.TimeoutMs = GetEnvAsInt("RISK_TIMEOUT_MS", 500)
	configs.Risk.VelocityWindowSec = GetEnvAsInt("RISK_VELOCITY_WINDOW_SEC", 300)
	configs.Risk.VelocityMaxAttempts = GetEnvAsInt("RISK_VELOCITY_MAX_ATTEMPTS", 5)
	configs.Risk.HighAmountMinor = GetEnvAsInt64("RISK_HIGH_AMOUNT_MINOR", 50000000)

	// Payments config
	configs.Payments.StalenessThresholdSec = GetEnvAsInt("PAYMENTS_STALENESS_THRESHOLD_SEC", 120)
	configs.Payments.OperatorAPIKey = GetEnv("PAYMENTS_OPERATOR_API_KEY", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/dukapay.log")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
