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

func mustTransaction(t *testing.T, date time.Time, amount string) *domain.Transaction {
	t.Helper()
	txn, err := domain.NewTransaction("test purchase", date, mustMoney(t, amount, "USD"), date)
	require.NoError(t, err)
	return txn
}

func mustRate(t *testing.T, rate string, effective time.Time) *domain.ExchangeRate {
	t.Helper()
	r, err := domain.NewExchangeRate(decimal.RequireFromString(rate), "USD", "EUR", effective)
	require.NoError(t, err)
	return &r
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		months int
		want   time.Time
	}{
		{
			name:   "mid-month back six months",
			date:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			months: -6,
			want:   time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year boundary",
			date:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			months: -6,
			want:   time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "clamps to end of shorter month",
			date:   time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
			months: -6,
			want:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "clamps to end of february in non-leap year",
			date:   time.Date(2023, 8, 31, 0, 0, 0, 0, time.UTC),
			months: -6,
			want:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "forward six months",
			date:   time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			months: 6,
			want:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AddMonths(tt.date, tt.months))
		})
	}
}

func TestIsRateValid_Boundaries(t *testing.T) {
	txnDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	txn := mustTransaction(t, txnDate, "100.00")

	tests := []struct {
		name      string
		effective time.Time
		want      bool
	}{
		{name: "same day as transaction", effective: txnDate, want: true},
		{name: "one day after transaction", effective: txnDate.AddDate(0, 0, 1), want: false},
		{name: "exactly six months before", effective: time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC), want: true},
		{name: "one day older than six months", effective: time.Date(2023, 12, 14, 0, 0, 0, 0, time.UTC), want: false},
		{name: "inside the window", effective: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "far in the past", effective: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := mustRate(t, "0.85", tt.effective)
			assert.Equal(t, tt.want, domain.IsRateValid(*txn, *rate))
		})
	}
}

func TestConvertTransaction(t *testing.T) {
	txn := mustTransaction(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "100.00")
	rate := mustRate(t, "0.85", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	converted, err := domain.ConvertTransaction(txn, rate)
	require.NoError(t, err)

	assert.Equal(t, txn.TransactionID, converted.TransactionID)
	assert.Equal(t, txn.Description, converted.Description)
	assert.Equal(t, txn.TransactionDate, converted.TransactionDate)
	assert.True(t, txn.Amount.Equal(converted.OriginalAmount))
	assert.Equal(t, "85.00", converted.ConvertedAmount.Amount().StringFixed(2))
	assert.Equal(t, "EUR", converted.ConvertedAmount.Currency())
	assert.Equal(t, "0.85", converted.RateUsed.String())
}

func TestConvertTransaction_Deterministic(t *testing.T) {
	txn := mustTransaction(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "33.33")
	rate := mustRate(t, "1.2345", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	first, err := domain.ConvertTransaction(txn, rate)
	require.NoError(t, err)
	second, err := domain.ConvertTransaction(txn, rate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertTransaction_IdentityRate(t *testing.T) {
	txn := mustTransaction(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "100.00")
	identity, err := domain.NewExchangeRate(decimal.NewFromInt(1), "USD", "USD", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	converted, err := domain.ConvertTransaction(txn, &identity)
	require.NoError(t, err)
	assert.True(t, converted.OriginalAmount.Equal(converted.ConvertedAmount))
}

func TestConvertTransaction_StaleRate(t *testing.T) {
	txn := mustTransaction(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "100.00")
	stale := mustRate(t, "0.85", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))

	_, err := domain.ConvertTransaction(txn, stale)
	assert.ErrorIs(t, err, apperrors.ErrRateNotApplicable)
	assert.Contains(t, err.Error(), "2023-12-01")
	assert.Contains(t, err.Error(), "2024-06-15")
}

func TestConvertTransaction_NilArguments(t *testing.T) {
	txn := mustTransaction(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "100.00")
	rate := mustRate(t, "0.85", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	_, err := domain.ConvertTransaction(nil, rate)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.ConvertTransaction(txn, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestConvertTransaction_CurrencyMismatch(t *testing.T) {
	txn := mustTransaction(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "100.00")
	mismatched, err := domain.NewExchangeRate(decimal.NewFromFloat(0.79), "GBP", "EUR", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = domain.ConvertTransaction(txn, &mismatched)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}
