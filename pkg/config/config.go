package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	IsProduction bool

	// ReconciliationTolerance is the largest absolute control-account
	// variance that still counts as reconciled.
	ReconciliationTolerance decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RECONCILIATION_TOLERANCE", "0.00")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	toleranceStr := viper.GetString("RECONCILIATION_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil {
		tolerance = decimal.Zero
		log.Printf("Warning: Invalid value for RECONCILIATION_TOLERANCE ('%s'). Defaulting to 0.\n", toleranceStr)
	}
	cfg.ReconciliationTolerance = tolerance

	return cfg, nil
}
