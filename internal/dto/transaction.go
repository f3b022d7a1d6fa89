package dto

import (
	"time"

	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for recording a new purchase
// transaction. The amount is always interpreted in the configured base
// currency; the date uses the YYYY-MM-DD calendar form.
type CreateTransactionRequest struct {
	Description     string          `json:"description" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	PurchaseAmount  decimal.Decimal `json:"purchaseAmount" binding:"required"`
}

// CreateTransactionResponse carries the identifier of a newly recorded transaction.
type CreateTransactionResponse struct {
	TransactionID string `json:"transactionId"`
}

// TransactionResponse defines the structure for API responses containing a
// stored transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionId"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate"`
	PurchaseAmount  decimal.Decimal `json:"purchaseAmount"`
	Currency        string          `json:"currency"`
}

// ConvertedTransactionResponse defines the structure for API responses
// containing a transaction converted into a target currency.
type ConvertedTransactionResponse struct {
	TransactionID    string          `json:"transactionId"`
	Description      string          `json:"description"`
	TransactionDate  string          `json:"transactionDate"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	TargetCurrency   string          `json:"targetCurrency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate.Format(time.DateOnly),
		PurchaseAmount:  txn.Amount.Amount(),
		Currency:        txn.Amount.Currency(),
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToConvertedTransactionResponse converts a domain.ConvertedTransaction to
// its response DTO.
func ToConvertedTransactionResponse(c *domain.ConvertedTransaction) ConvertedTransactionResponse {
	return ConvertedTransactionResponse{
		TransactionID:    c.TransactionID,
		Description:      c.Description,
		TransactionDate:  c.TransactionDate.Format(time.DateOnly),
		OriginalAmount:   c.OriginalAmount.Amount(),
		OriginalCurrency: c.OriginalAmount.Currency(),
		TargetCurrency:   c.ConvertedAmount.Currency(),
		ExchangeRate:     c.RateUsed,
		ConvertedAmount:  c.ConvertedAmount.Amount(),
	}
}
