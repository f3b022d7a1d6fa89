package domain

import (
	"fmt"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExchangeRate is an immutable conversion rate between two currencies,
// recorded for a specific effective date.
type ExchangeRate struct {
	rate          decimal.Decimal
	fromCurrency  string
	toCurrency    string
	effectiveDate time.Time
}

// NewExchangeRate validates and constructs an ExchangeRate. The rate must be
// strictly positive and both currency codes must be 3 letters. The effective
// date is normalized to a UTC calendar date.
func NewExchangeRate(rate decimal.Decimal, fromCurrency, toCurrency string, effectiveDate time.Time) (ExchangeRate, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, rate.String())
	}
	from, err := normalizeCurrencyCode(fromCurrency)
	if err != nil {
		return ExchangeRate{}, err
	}
	to, err := normalizeCurrencyCode(toCurrency)
	if err != nil {
		return ExchangeRate{}, err
	}
	return ExchangeRate{
		rate:          rate,
		fromCurrency:  from,
		toCurrency:    to,
		effectiveDate: DateOnly(effectiveDate),
	}, nil
}

// Rate returns the numeric conversion rate.
func (r ExchangeRate) Rate() decimal.Decimal {
	return r.rate
}

// FromCurrency returns the source currency code.
func (r ExchangeRate) FromCurrency() string {
	return r.fromCurrency
}

// ToCurrency returns the target currency code.
func (r ExchangeRate) ToCurrency() string {
	return r.toCurrency
}

// EffectiveDate returns the UTC calendar date the rate was recorded for.
func (r ExchangeRate) EffectiveDate() time.Time {
	return r.effectiveDate
}

// Convert applies the rate to the given money. The money must be denominated
// in the rate's source currency. Multiplication is carried out at full
// decimal precision; the 2-decimal rounding happens inside NewMoney.
func (r ExchangeRate) Convert(m Money) (Money, error) {
	if m.Currency() != r.fromCurrency {
		return Money{}, fmt.Errorf("%w: money is in %s but rate converts from %s",
			apperrors.ErrCurrencyMismatch, m.Currency(), r.fromCurrency)
	}
	return NewMoney(m.Amount().Mul(r.rate), r.toCurrency)
}
