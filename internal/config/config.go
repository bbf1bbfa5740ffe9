package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the full application configuration surface.
type Config struct {
	LogLevel     string
	OutputFormat string
	Fixtures     FixturesConfig
	Interest     InterestConfig
}

// FixturesConfig points at the input documents. Empty paths select the
// embedded sample data.
type FixturesConfig struct {
	SalesFile     string
	StockFile     string
	MovementsFile string
}

// InterestConfig holds the overdue amount to evaluate.
type InterestConfig struct {
	Principal string
	DueDate   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance. The result is not validated so callers can
// apply overrides first; call Validate before use.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// A missing .env is fine; configuration may come from the environment.
		_ = godotenv.Load()
	}

	cfg := &Config{
		LogLevel:     getenvWithDefault("LOG_LEVEL", "info"),
		OutputFormat: getenvWithDefault("OUTPUT_FORMAT", FormatText),
		Fixtures: FixturesConfig{
			SalesFile:     os.Getenv("SALES_FILE"),
			StockFile:     os.Getenv("STOCK_FILE"),
			MovementsFile: os.Getenv("MOVEMENTS_FILE"),
		},
		Interest: InterestConfig{
			Principal: getenvWithDefault("INTEREST_PRINCIPAL", "1000"),
			DueDate:   getenvWithDefault("INTEREST_DUE_DATE", "2025-11-10"),
		},
	}

	return cfg, nil
}

// Validate ensures that configuration values are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	if c.OutputFormat != FormatText && c.OutputFormat != FormatJSON {
		return fmt.Errorf("OUTPUT_FORMAT must be %q or %q, got %q", FormatText, FormatJSON, c.OutputFormat)
	}

	if c.LogLevel == "" {
		return errors.New("LOG_LEVEL must not be empty")
	}

	principal, err := c.PrincipalAmount()
	if err != nil {
		return err
	}
	if principal.IsNegative() {
		return fmt.Errorf("INTEREST_PRINCIPAL must not be negative, got %s", principal)
	}

	if c.Interest.DueDate == "" {
		return errors.New("INTEREST_DUE_DATE must be provided")
	}

	return nil
}

// PrincipalAmount parses the configured principal.
func (c *Config) PrincipalAmount() (decimal.Decimal, error) {
	principal, err := decimal.NewFromString(strings.TrimSpace(c.Interest.Principal))
	if err != nil {
		return decimal.Zero, fmt.Errorf("INTEREST_PRINCIPAL %q is not a number: %w", c.Interest.Principal, err)
	}
	return principal, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
