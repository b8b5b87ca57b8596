package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTExpiryMinutes int    `mapstructure:"JWT_EXPIRY_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Stripe configuration
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	// Price IDs per plan, used when creating checkout sessions
	StripePriceStarter      string `mapstructure:"STRIPE_PRICE_STARTER"`
	StripePriceProfessional string `mapstructure:"STRIPE_PRICE_PROFESSIONAL"`
	StripePriceEnterprise   string `mapstructure:"STRIPE_PRICE_ENTERPRISE"`
	BillingReturnURL        string `mapstructure:"BILLING_RETURN_URL"`

	// Photo optimization configuration
	PhotoMaxWidth  int `mapstructure:"PHOTO_MAX_WIDTH"`
	PhotoMaxHeight int `mapstructure:"PHOTO_MAX_HEIGHT"`
	PhotoQuality   int `mapstructure:"PHOTO_QUALITY"`
	PhotoMaxBytes  int `mapstructure:"PHOTO_MAX_BYTES"`

	// Notification dispatch configuration
	WebhookTimeoutSec  int `mapstructure:"WEBHOOK_TIMEOUT_SEC"`
	WebhookMaxRetries  int `mapstructure:"WEBHOOK_MAX_RETRIES"`
	DispatchWorkers    int `mapstructure:"DISPATCH_WORKERS"`
	DispatchQueueDepth int `mapstructure:"DISPATCH_QUEUE_DEPTH"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "mailroom")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Stripe defaults
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_PRICE_STARTER", "")
	viper.SetDefault("STRIPE_PRICE_PROFESSIONAL", "")
	viper.SetDefault("STRIPE_PRICE_ENTERPRISE", "")
	viper.SetDefault("BILLING_RETURN_URL", "http://localhost:3000/settings/billing")

	// Photo defaults
	viper.SetDefault("PHOTO_MAX_WIDTH", 800)
	viper.SetDefault("PHOTO_MAX_HEIGHT", 600)
	viper.SetDefault("PHOTO_QUALITY", 80)
	viper.SetDefault("PHOTO_MAX_BYTES", 512*1024)

	// Notification dispatch defaults
	viper.SetDefault("WEBHOOK_TIMEOUT_SEC", 10)
	viper.SetDefault("WEBHOOK_MAX_RETRIES", 4)
	viper.SetDefault("DISPATCH_WORKERS", 4)
	viper.SetDefault("DISPATCH_QUEUE_DEPTH", 256)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.PhotoMaxWidth <= 0 || config.PhotoMaxHeight <= 0 {
		return fmt.Errorf("photo max dimensions must be positive")
	}
	if config.PhotoQuality < 1 || config.PhotoQuality > 100 {
		return fmt.Errorf("photo quality must be between 1 and 100")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
