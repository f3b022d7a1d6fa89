package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	portssvc "github.com/ptapp/purchase_txn_app/internal/core/ports/services"
	"github.com/ptapp/purchase_txn_app/internal/dto"
	"github.com/ptapp/purchase_txn_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to purchase transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to purchase transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.GET("/:transactionID/conversion", h.convertTransaction)
	}
}

// createTransaction godoc
// @Summary Record a purchase transaction
// @Description Records a new purchase transaction in the base currency
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{TransactionID: txn.TransactionID})
}

// getTransaction godoc
// @Summary Get a purchase transaction
// @Description Retrieves a stored transaction by its identifier
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	transactionID := c.Param("transactionID")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List purchase transactions
// @Description Retrieves all stored transactions
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// convertTransaction godoc
// @Summary Convert a purchase transaction
// @Description Reports a transaction's value in the target currency using a historical exchange rate
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   currency query string true "Target currency code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConvertedTransactionResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 422 {object} map[string]string "No usable exchange rate"
// @Failure 500 {object} map[string]string "Failed to convert transaction"
// @Router /transactions/{transactionID}/conversion [get]
func (h *transactionHandler) convertTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	transactionID := c.Param("transactionID")
	targetCurrency := c.Query("currency")

	logger = logger.With(
		slog.String("transaction_id", transactionID),
		slog.String("target_currency", targetCurrency),
	)

	converted, err := h.transactionService.ConvertTransaction(c.Request.Context(), transactionID, targetCurrency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error converting transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Transaction not found for conversion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrRateUnavailable), errors.Is(err, apperrors.ErrRateNotApplicable):
			// Both mean the same thing to the caller: the purchase cannot be
			// converted to the target currency right now.
			logger.Warn("No usable exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "The purchase cannot be converted to the target currency"})
		case errors.Is(err, apperrors.ErrCurrencyMismatch):
			logger.Error("Currency mismatch during conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert transaction"})
		default:
			logger.Error("Failed to convert transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert transaction"})
		}
		return
	}

	logger.Info("Transaction converted successfully")
	c.JSON(http.StatusOK, dto.ToConvertedTransactionResponse(converted))
}
