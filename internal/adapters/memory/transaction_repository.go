package memory

import (
	"context"
	"sync"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	portsrepo "github.com/ptapp/purchase_txn_app/internal/core/ports/repositories"
)

// TransactionRepository implements the transaction repository ports with an
// in-process map. Writes of distinct identifiers never interfere and a read
// issued after a returned write observes the written transaction; the mutex
// gives linearizable single-key semantics.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction
}

// NewTransactionRepository creates an empty in-memory repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[string]domain.Transaction),
	}
}

// Ensure TransactionRepository implements the facade interface
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction stores a new transaction.
func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transactions[txn.TransactionID]; exists {
		return apperrors.ErrDuplicate
	}
	r.transactions[txn.TransactionID] = txn
	return nil
}

// FindTransactionByID retrieves a transaction by its identifier.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txn, ok := r.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

// ListTransactions retrieves all stored transactions.
func (r *TransactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(r.transactions))
	for _, txn := range r.transactions {
		out = append(out, txn)
	}
	return out, nil
}
