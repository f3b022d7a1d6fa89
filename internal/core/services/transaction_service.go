package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	portsrepo "github.com/ptapp/purchase_txn_app/internal/core/ports/repositories"
	portssvc "github.com/ptapp/purchase_txn_app/internal/core/ports/services"
	"github.com/ptapp/purchase_txn_app/internal/dto"
	"github.com/ptapp/purchase_txn_app/internal/middleware"
)

// transactionService provides the orchestration around the pure conversion
// logic in the domain package: it persists transactions in the base currency
// and combines stored transactions with externally fetched rates.
type transactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	rateSource   portsrepo.ExchangeRateSource
	baseCurrency string
	now          func() time.Time
}

// TransactionServiceOption configures a transactionService.
type TransactionServiceOption func(*transactionService)

// WithClock overrides the wall clock used for future-date checks.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new TransactionService. All transactions
// are recorded in baseCurrency; rates are fetched from rateSource at
// conversion time.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rateSource portsrepo.ExchangeRateSource, baseCurrency string, opts ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	s := &transactionService{
		txnRepo:      txnRepo,
		rateSource:   rateSource,
		baseCurrency: baseCurrency,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure transactionService implements the facade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new purchase transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txnDate, err := time.Parse(time.DateOnly, req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction date must be in YYYY-MM-DD form", apperrors.ErrValidation)
	}

	amount, err := domain.NewMoney(req.PurchaseAmount, s.baseCurrency)
	if err != nil {
		return nil, err
	}

	txn, err := domain.NewTransaction(req.Description, txnDate, amount, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", txn.Amount.String()),
	)
	return txn, nil
}

// GetTransactionByID retrieves a stored transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves all stored transactions.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ConvertTransaction reports the value of a stored transaction in the target
// currency. The transaction must exist before any rate is fetched; a missing
// rate and an unreachable rate source surface identically as
// apperrors.ErrRateUnavailable.
func (s *transactionService) ConvertTransaction(ctx context.Context, transactionID, targetCurrency string) (*domain.ConvertedTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	targetCurrency = strings.ToUpper(strings.TrimSpace(targetCurrency))
	if len(targetCurrency) != 3 {
		return nil, fmt.Errorf("%w: target currency code must be 3 letters", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}

	rate, err := s.rateSource.FetchRate(ctx, targetCurrency, txn.TransactionDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		if !errors.Is(err, apperrors.ErrRateUnavailable) {
			logger.Warn("Exchange rate fetch failed",
				slog.String("target_currency", targetCurrency),
				slog.String("error", err.Error()),
			)
			err = fmt.Errorf("%w: fetching rate for %s: %s", apperrors.ErrRateUnavailable, targetCurrency, err.Error())
		}
		return nil, err
	}

	converted, err := domain.ConvertTransaction(txn, rate)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction converted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("target_currency", converted.ConvertedAmount.Currency()),
		slog.String("rate", converted.RateUsed.String()),
	)
	return converted, nil
}
