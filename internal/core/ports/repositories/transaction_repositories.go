package repositories

import (
	"context"

	"github.com/ptapp/purchase_txn_app/internal/core/domain"
)

// TransactionReader defines read operations for stored transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its identifier.
	// Returns apperrors.ErrNotFound when no such transaction exists.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all stored transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for stored transactions.
// Transactions are insert-only; there are no update or delete operations.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. Returns
	// apperrors.ErrDuplicate when the identifier is already present.
	// Implementations must guarantee that concurrent writes of distinct
	// identifiers do not interfere and that a read issued after a returned
	// write observes the written transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
