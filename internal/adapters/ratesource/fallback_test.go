package ratesource_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/adapters/ratesource"
	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRate(ctx context.Context, targetCurrency string, transactionDate time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, targetCurrency, transactionDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func fallbackRates(t *testing.T) map[string]decimal.Decimal {
	t.Helper()
	return map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.78"),
	}
}

func TestFetchRate_PrimaryWins(t *testing.T) {
	txnDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	primaryRate, err := domain.NewExchangeRate(decimal.RequireFromString("0.85"), "USD", "EUR", txnDate.AddDate(0, -1, 0))
	require.NoError(t, err)

	primary := new(MockRateSource)
	primary.On("FetchRate", mock.Anything, "EUR", txnDate).Return(&primaryRate, nil).Once()

	source := ratesource.NewFallbackRateSource(primary, fallbackRates(t), "USD", nil)
	rate, err := source.FetchRate(context.Background(), "EUR", txnDate)
	require.NoError(t, err)

	assert.True(t, rate.Rate().Equal(decimal.RequireFromString("0.85")))
	primary.AssertExpectations(t)
}

func TestFetchRate_FallsBackWhenUnavailable(t *testing.T) {
	txnDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	primary := new(MockRateSource)
	primary.On("FetchRate", mock.Anything, "EUR", txnDate).Return(nil, apperrors.ErrRateUnavailable).Once()

	source := ratesource.NewFallbackRateSource(primary, fallbackRates(t), "USD", nil)
	rate, err := source.FetchRate(context.Background(), "EUR", txnDate)
	require.NoError(t, err)

	assert.True(t, rate.Rate().Equal(decimal.RequireFromString("0.92")))
	assert.Equal(t, "USD", rate.FromCurrency())
	assert.Equal(t, "EUR", rate.ToCurrency())
	// synthesized on the transaction date so it always sits inside the window
	assert.Equal(t, txnDate, rate.EffectiveDate())
}

func TestFetchRate_NoFallbackEntry(t *testing.T) {
	txnDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	primary := new(MockRateSource)
	primary.On("FetchRate", mock.Anything, "XYZ", txnDate).Return(nil, apperrors.ErrRateUnavailable).Once()

	source := ratesource.NewFallbackRateSource(primary, fallbackRates(t), "USD", nil)
	_, err := source.FetchRate(context.Background(), "XYZ", txnDate)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}

func TestFetchRate_OtherErrorsPassThrough(t *testing.T) {
	txnDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	boom := errors.New("connection reset")

	primary := new(MockRateSource)
	primary.On("FetchRate", mock.Anything, "EUR", txnDate).Return(nil, boom).Once()

	source := ratesource.NewFallbackRateSource(primary, fallbackRates(t), "USD", nil)
	_, err := source.FetchRate(context.Background(), "EUR", txnDate)
	assert.ErrorIs(t, err, boom)
}
