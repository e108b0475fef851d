package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	Stripe      StripeConfig
	MobileMoney MobileMoneyConfig
	Wallet      WalletConfig
	Risk        RiskConfig
	Payments    PaymentsConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// StripeConfig contains credentials for the card processor
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

// MobileMoneyConfig contains credentials for the STK push gateway.
// Sandbox switches the base URL between the sandbox and production APIs.
type MobileMoneyConfig struct {
	BaseURL            string
	ConsumerKey        string
	ConsumerSecret     string
	ShortCode          string
	Passkey            string
	CallbackURL        string
	InitiatorName      string
	SecurityCredential string
	Sandbox            bool
	TimeoutSeconds     int
}

// WalletConfig contains credentials for the redirect wallet provider
type WalletConfig struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	ReturnURL      string
	CancelURL      string
	Sandbox        bool
	TimeoutSeconds int
}

// RiskConfig contains risk gate configuration.
// The gate fails open: when disabled or erroring the payment proceeds.
type RiskConfig struct {
	Enabled             bool
	BlockThreshold      int
	ChallengeThreshold  int
	TimeoutMs           int
	VelocityWindowSec   int
	VelocityMaxAttempts int
	HighAmountMinor     int64
}

// PaymentsConfig contains orchestrator-level settings
type PaymentsConfig struct {
	StalenessThresholdSec int
	OperatorAPIKey        string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
