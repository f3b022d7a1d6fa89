package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateUnavailable indicates that the external source returned no exchange
// rate, or could not be reached. Callers cannot distinguish the two cases.
var ErrRateUnavailable = errors.New("no exchange rate available")

// ErrRateNotApplicable indicates that an exchange rate was found but its
// effective date falls outside the validity window for the transaction.
var ErrRateNotApplicable = errors.New("exchange rate not applicable")

// ErrCurrencyMismatch indicates a conversion was attempted with a rate whose
// source currency does not match the money being converted. Transactions are
// always stored in the configured base currency, so this is an internal
// invariant violation rather than a client error.
var ErrCurrencyMismatch = errors.New("currency mismatch")
