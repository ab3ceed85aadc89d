package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	JWTSecret     string
	MigrationsDir string

	// Database pool sizing
	DBMaxConns int32
	DBMinConns int32

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP
	RateLimit string

	// CORS
	AllowedOrigins []string

	// Accounting defaults
	DefaultCurrency      string
	CashFundingAccountID int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("DEFAULT_CURRENCY", "MAD")
	viper.SetDefault("CASH_FUNDING_ACCOUNT_ID", 1)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.MigrationsDir = viper.GetString("MIGRATIONS_DIR")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.DBMinConns = viper.GetInt32("DB_MIN_CONNS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.CashFundingAccountID = viper.GetInt64("CASH_FUNDING_ACCOUNT_ID")
	if cfg.CashFundingAccountID == 0 {
		log.Println("Warning: CASH_FUNDING_ACCOUNT_ID not set. Cash box top-ups must name a source account.")
	}

	return cfg, nil
}
