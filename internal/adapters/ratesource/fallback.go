package ratesource

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	portsrepo "github.com/ptapp/purchase_txn_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// FallbackRateSource decorates a primary rate source with a static rate table.
// When the primary has no rate for a currency, a configured fallback rate is
// synthesized with the transaction date as its effective date. Errors other
// than a missing rate pass through unchanged.
type FallbackRateSource struct {
	primary      portsrepo.ExchangeRateSource
	rates        map[string]decimal.Decimal
	baseCurrency string
	logger       *slog.Logger
}

// NewFallbackRateSource wraps primary with the given rate table. Keys are
// target currency codes; values are rates from baseCurrency.
func NewFallbackRateSource(primary portsrepo.ExchangeRateSource, rates map[string]decimal.Decimal, baseCurrency string, logger *slog.Logger) *FallbackRateSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackRateSource{
		primary:      primary,
		rates:        rates,
		baseCurrency: baseCurrency,
		logger:       logger,
	}
}

// Ensure FallbackRateSource implements the rate source port
var _ portsrepo.ExchangeRateSource = (*FallbackRateSource)(nil)

// FetchRate delegates to the primary source and falls back to the static
// table when the primary reports the rate as unavailable.
func (s *FallbackRateSource) FetchRate(ctx context.Context, targetCurrency string, transactionDate time.Time) (*domain.ExchangeRate, error) {
	rate, err := s.primary.FetchRate(ctx, targetCurrency, transactionDate)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrRateUnavailable) {
		return nil, err
	}

	fallbackRate, ok := s.rates[targetCurrency]
	if !ok {
		return nil, err
	}

	s.logger.WarnContext(ctx, "primary rate source had no rate, using configured fallback",
		"target_currency", targetCurrency,
		"rate", fallbackRate.String(),
	)
	synthesized, synthErr := domain.NewExchangeRate(fallbackRate, s.baseCurrency, targetCurrency, transactionDate)
	if synthErr != nil {
		return nil, synthErr
	}
	return &synthesized, nil
}
