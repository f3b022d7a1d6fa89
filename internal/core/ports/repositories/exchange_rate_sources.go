package repositories

import (
	"context"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/core/domain"
)

// ExchangeRateSource supplies exchange rates from an external data source.
// Implementations are expected, but not required, to prefilter server-side on
// the on-or-before-date / six-month window; the conversion engine re-checks
// the window regardless of what the source already filtered.
type ExchangeRateSource interface {
	// FetchRate retrieves the most recent rate from the base currency into
	// targetCurrency effective on or before transactionDate. Returns
	// apperrors.ErrRateUnavailable when the source has no usable rate or
	// cannot be reached; the two cases are not distinguished.
	FetchRate(ctx context.Context, targetCurrency string, transactionDate time.Time) (*domain.ExchangeRate, error)
}
