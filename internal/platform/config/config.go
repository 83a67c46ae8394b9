package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required"`
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool

	// Outbound collaborators
	LedgerAPIURL string `validate:"required,url"`
	SalesAPIURL  string `validate:"required,url"`

	// Draft session cache
	DraftTTL             time.Duration `validate:"gt=0"`
	RetainAccountOnReset bool

	// Form defaults
	DefaultAccount       string `validate:"required"`
	DefaultCategoryGroup string `validate:"required"`
	DefaultTaxRate       float64 `validate:"gte=0"`

	// API protection
	APITokenSecret string
	RateLimit      string `validate:"required"` // ulule/limiter format, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LEDGER_API_URL", "http://localhost:9090")
	viper.SetDefault("SALES_API_URL", "http://localhost:9091")
	viper.SetDefault("DRAFT_TTL", "24h")
	viper.SetDefault("RETAIN_ACCOUNT_ON_RESET", true)
	viper.SetDefault("DEFAULT_ACCOUNT", "cash")
	viper.SetDefault("DEFAULT_CATEGORY_GROUP", "operating_cost")
	viper.SetDefault("DEFAULT_TAX_RATE", 9.0)
	viper.SetDefault("API_TOKEN_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Draft sessions will be kept in memory only.")
	}
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.LedgerAPIURL = viper.GetString("LEDGER_API_URL")
	cfg.SalesAPIURL = viper.GetString("SALES_API_URL")

	draftTTLStr := viper.GetString("DRAFT_TTL")
	draftTTL, err := time.ParseDuration(draftTTLStr)
	if err != nil {
		draftTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for DRAFT_TTL ('%s'). Defaulting to %s.\n", draftTTLStr, draftTTL)
	}
	cfg.DraftTTL = draftTTL

	cfg.RetainAccountOnReset = viper.GetBool("RETAIN_ACCOUNT_ON_RESET")
	cfg.DefaultAccount = viper.GetString("DEFAULT_ACCOUNT")
	cfg.DefaultCategoryGroup = viper.GetString("DEFAULT_CATEGORY_GROUP")
	cfg.DefaultTaxRate = viper.GetFloat64("DEFAULT_TAX_RATE")

	cfg.APITokenSecret = viper.GetString("API_TOKEN_SECRET")
	if cfg.APITokenSecret == "" {
		log.Println("Warning: API_TOKEN_SECRET not set. API authentication is disabled.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
