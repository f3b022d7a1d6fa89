package domain

import (
	"fmt"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an immutable amount in a single currency. Amounts are stored
// rounded to two decimal places, half away from zero, so that converted
// values are deterministic regardless of the precision of the inputs.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates and constructs a Money value. The currency code must be
// exactly three letters and is upper-cased; the amount must not be negative.
func NewMoney(amount decimal.Decimal, currencyCode string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative, got %s", apperrors.ErrValidation, amount.String())
	}
	code, err := normalizeCurrencyCode(currencyCode)
	if err != nil {
		return Money{}, err
	}
	// decimal.Round rounds half away from zero: 100.555 -> 100.56.
	return Money{amount: amount.Round(2), currency: code}, nil
}

// Amount returns the rounded amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-cased 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Equal reports structural equality on amount and currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
