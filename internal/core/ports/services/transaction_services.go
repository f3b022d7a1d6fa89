package services

import (
	"context"

	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	"github.com/ptapp/purchase_txn_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all recorded transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new purchase transaction in
	// the base currency.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionConverterSvc converts stored transactions into other currencies.
type TransactionConverterSvc interface {
	// ConvertTransaction reports a transaction's value in the target currency
	// using a historical rate from the configured exchange rate source.
	ConvertTransaction(ctx context.Context, transactionID, targetCurrency string) (*domain.ConvertedTransaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionConverterSvc
}
