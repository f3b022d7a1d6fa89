package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFallbackRates(t *testing.T) {
	rates, err := parseFallbackRates("EUR=0.92, gbp=0.78")
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	assert.True(t, rates["GBP"].Equal(decimal.RequireFromString("0.78")))
}

func TestParseFallbackRates_Empty(t *testing.T) {
	rates, err := parseFallbackRates("")
	require.NoError(t, err)
	assert.Nil(t, rates)
}

func TestParseFallbackRates_Invalid(t *testing.T) {
	for _, raw := range []string{"EUR", "EUR=abc", "EUR=0", "EUR=-1"} {
		_, err := parseFallbackRates(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_CURRENCY", "usd")
	t.Setenv("FALLBACK_RATES", "EUR=0.92")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	require.Len(t, cfg.FallbackRates, 1)
	assert.True(t, cfg.FallbackRates["EUR"].Equal(decimal.RequireFromString("0.92")))
}
