package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// PgxTransactionRepository implements the transaction repository ports using pgxpool.
type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new PgxTransactionRepository.
func NewTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// SaveTransaction inserts a new transaction into the database.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, description, transaction_date, amount, currency_code, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID, txn.Description, txn.TransactionDate,
		txn.Amount.Amount(), txn.Amount.Currency(), time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting transaction: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction from the database.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, description, transaction_date, amount, currency_code
		FROM transactions
		WHERE transaction_id = $1
	`
	var (
		id           string
		description  string
		txnDate      time.Time
		amount       decimal.Decimal
		currencyCode string
	)
	err := r.db.QueryRow(ctx, query, transactionID).Scan(&id, &description, &txnDate, &amount, &currencyCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding transaction: %w", err)
	}
	return rehydrateTransaction(id, description, txnDate, amount, currencyCode)
}

// ListTransactions retrieves all transactions ordered by creation time.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, description, transaction_date, amount, currency_code
		FROM transactions
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var (
			id           string
			description  string
			txnDate      time.Time
			amount       decimal.Decimal
			currencyCode string
		)
		if err := rows.Scan(&id, &description, &txnDate, &amount, &currencyCode); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		txn, err := rehydrateTransaction(id, description, txnDate, amount, currencyCode)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txns, nil
}

// rehydrateTransaction rebuilds a domain transaction from stored columns.
// Stored rows passed validation when they were written, so a failure here
// indicates data corruption rather than bad input.
func rehydrateTransaction(id, description string, txnDate time.Time, amount decimal.Decimal, currencyCode string) (*domain.Transaction, error) {
	money, err := domain.NewMoney(amount, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("stored transaction %s has invalid amount: %w", id, err)
	}
	return &domain.Transaction{
		TransactionID:   id,
		Description:     description,
		TransactionDate: domain.DateOnly(txnDate),
		Amount:          money,
	}, nil
}
