package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DatabaseURL selects the transaction store: a PostgreSQL URL enables the
	// pgsql repository, an empty value falls back to the in-memory store.
	DatabaseURL string

	// BaseCurrency is the currency every purchase is recorded in.
	BaseCurrency string

	TreasuryAPIURL  string
	TreasuryTimeout time.Duration

	// FallbackRates are static rates from BaseCurrency used when the primary
	// rate source has nothing, keyed by target currency code.
	FallbackRates map[string]decimal.Decimal
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("TREASURY_API_URL", "")
	v.SetDefault("TREASURY_TIMEOUT", "10s")
	v.SetDefault("FALLBACK_RATES", "")
	v.AutomaticEnv()

	if v.GetString("PGSQL_URL") == "" {
		log.Println("Warning: PGSQL_URL not set, using in-memory transaction store.")
	}

	fallbackRates, err := parseFallbackRates(v.GetString("FALLBACK_RATES"))
	if err != nil {
		return nil, fmt.Errorf("parsing FALLBACK_RATES: %w", err)
	}

	return &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		BaseCurrency:    strings.ToUpper(v.GetString("BASE_CURRENCY")),
		TreasuryAPIURL:  v.GetString("TREASURY_API_URL"),
		TreasuryTimeout: v.GetDuration("TREASURY_TIMEOUT"),
		FallbackRates:   fallbackRates,
	}, nil
}

// parseFallbackRates parses a "EUR=0.92,GBP=0.78" style rate list. An empty
// input yields a nil map, which disables the fallback source.
func parseFallbackRates(raw string) (map[string]decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	rates := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(raw, ",") {
		code, rateStr, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("invalid rate entry %q, expected CODE=rate", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rateStr))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("rate for %s must be positive, got %s", code, rate.String())
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
}
