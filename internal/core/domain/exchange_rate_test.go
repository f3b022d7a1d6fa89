package domain_test

import (
	"testing"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExchangeRate_Validation(t *testing.T) {
	effective := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rate    decimal.Decimal
		from    string
		to      string
		wantErr bool
	}{
		{name: "valid rate", rate: decimal.NewFromFloat(0.85), from: "USD", to: "EUR", wantErr: false},
		{name: "zero rate", rate: decimal.Zero, from: "USD", to: "EUR", wantErr: true},
		{name: "negative rate", rate: decimal.NewFromFloat(-0.85), from: "USD", to: "EUR", wantErr: true},
		{name: "bad from code", rate: decimal.NewFromFloat(0.85), from: "US", to: "EUR", wantErr: true},
		{name: "bad to code", rate: decimal.NewFromFloat(0.85), from: "USD", to: "EURO", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := domain.NewExchangeRate(tt.rate, tt.from, tt.to, effective)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, rate.FromCurrency())
			assert.Equal(t, tt.to, rate.ToCurrency())
			assert.True(t, tt.rate.Equal(rate.Rate()))
			assert.Equal(t, effective, rate.EffectiveDate())
		})
	}
}

func TestExchangeRate_EffectiveDateNormalizedToUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	effective := time.Date(2024, 6, 10, 3, 15, 0, 0, loc) // 2024-06-09 in UTC

	rate, err := domain.NewExchangeRate(decimal.NewFromInt(1), "USD", "AUD", effective)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), rate.EffectiveDate())
}

func TestExchangeRate_Convert(t *testing.T) {
	rate, err := domain.NewExchangeRate(decimal.NewFromFloat(0.85), "USD", "EUR", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	usd, err := domain.NewMoney(decimal.NewFromFloat(100.00), "USD")
	require.NoError(t, err)

	converted, err := rate.Convert(usd)
	require.NoError(t, err)
	assert.Equal(t, "85.00", converted.Amount().StringFixed(2))
	assert.Equal(t, "EUR", converted.Currency())
}

func TestExchangeRate_Convert_FullPrecisionBeforeRounding(t *testing.T) {
	// 19.95 * 0.836 = 16.67820 which must round once, at the end, to 16.68.
	rate, err := domain.NewExchangeRate(decimal.RequireFromString("0.836"), "USD", "EUR", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	usd, err := domain.NewMoney(decimal.RequireFromString("19.95"), "USD")
	require.NoError(t, err)

	converted, err := rate.Convert(usd)
	require.NoError(t, err)
	assert.Equal(t, "16.68", converted.Amount().StringFixed(2))
}

func TestExchangeRate_Convert_CurrencyMismatch(t *testing.T) {
	rate, err := domain.NewExchangeRate(decimal.NewFromFloat(0.85), "USD", "EUR", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	gbp, err := domain.NewMoney(decimal.NewFromFloat(100.00), "GBP")
	require.NoError(t, err)

	_, err = rate.Convert(gbp)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}
