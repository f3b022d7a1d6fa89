package domain

import (
	"fmt"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateValidityMonths is how far back, in calendar months, a rate's effective
// date may lie relative to the transaction date and still be usable.
const RateValidityMonths = 6

// ConvertedTransaction is the derived, never-persisted result of applying an
// exchange rate to a transaction. It is computed fresh per request.
type ConvertedTransaction struct {
	TransactionID   string
	Description     string
	TransactionDate time.Time
	OriginalAmount  Money
	ConvertedAmount Money
	RateUsed        decimal.Decimal
}

// IsRateValid reports whether a rate may be applied to a transaction: the
// rate's effective date must be on or before the transaction date, and no
// older than six calendar months before it. Both bounds are inclusive. This
// predicate is the single source of truth for rate acceptability.
func IsRateValid(txn Transaction, rate ExchangeRate) bool {
	txnDate := DateOnly(txn.TransactionDate)
	effective := rate.EffectiveDate()
	earliest := AddMonths(txnDate, -RateValidityMonths)
	return !effective.Before(earliest) && !effective.After(txnDate)
}

// ConvertTransaction applies an exchange rate to a transaction, producing the
// converted record. The rate must satisfy IsRateValid and must convert from
// the currency the transaction is stored in.
func ConvertTransaction(txn *Transaction, rate *ExchangeRate) (*ConvertedTransaction, error) {
	if txn == nil || rate == nil {
		return nil, fmt.Errorf("%w: transaction and exchange rate are required", apperrors.ErrValidation)
	}
	if !IsRateValid(*txn, *rate) {
		return nil, fmt.Errorf("%w: rate effective %s is outside the %d-month window for transaction dated %s",
			apperrors.ErrRateNotApplicable,
			rate.EffectiveDate().Format(time.DateOnly),
			RateValidityMonths,
			txn.TransactionDate.Format(time.DateOnly))
	}

	converted, err := rate.Convert(txn.Amount)
	if err != nil {
		return nil, err
	}

	return &ConvertedTransaction{
		TransactionID:   txn.TransactionID,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		OriginalAmount:  txn.Amount,
		ConvertedAmount: converted,
		RateUsed:        rate.Rate(),
	}, nil
}
