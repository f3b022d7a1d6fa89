package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ptapp/purchase_txn_app/internal/apperrors"
)

// MaxDescriptionLength is the maximum length of a transaction description
// after leading/trailing whitespace has been trimmed.
const MaxDescriptionLength = 50

// Transaction is a purchase recorded in the fixed base currency. It is
// created once through NewTransaction and never mutated afterwards; there are
// no update or delete operations.
type Transaction struct {
	TransactionID   string
	Description     string
	TransactionDate time.Time
	Amount          Money
}

// NewTransaction validates the inputs and constructs a Transaction with a
// fresh unique identifier. The description must be non-empty and at most 50
// characters after trimming. The transaction date must not be after the
// current UTC calendar date; now is injected so callers control the clock.
func NewTransaction(description string, transactionDate time.Time, amount Money, now time.Time) (*Transaction, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description must not exceed %d characters", apperrors.ErrValidation, MaxDescriptionLength)
	}

	txnDate := DateOnly(transactionDate)
	if txnDate.After(DateOnly(now)) {
		return nil, fmt.Errorf("%w: transaction date %s is in the future", apperrors.ErrValidation, txnDate.Format(time.DateOnly))
	}

	return &Transaction{
		TransactionID:   uuid.NewString(),
		Description:     trimmed,
		TransactionDate: txnDate,
		Amount:          amount,
	}, nil
}
