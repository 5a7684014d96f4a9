package api

import (
	"context"  // Request context
	"net/http" // HTTP status codes

	"wallet_ledger/internal/domain"     // Domain models
	"wallet_ledger/internal/middleware" // Authenticated caller
	"wallet_ledger/internal/service"    // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// Ledger is the wallet service as seen by the HTTP layer
type Ledger interface {
	CreateTransaction(ctx context.Context, in service.CreateTransactionInput, authToken string) (*domain.TransactionResponse, error)
	ListTransactions(ctx context.Context, txType *domain.TransactionType) ([]domain.TransactionResponse, error)
	GetTransaction(ctx context.Context, id string) (*domain.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id string) error
	Balance(ctx context.Context, userID string) (domain.BalanceResponse, error)
}

// CreateTransactionHandler records a CREDIT or DEBIT after confirming the user exists
func CreateTransactionHandler(ledger Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c)
			return
		}
		if errs := ValidateCreateTransaction(&req); len(errs) > 0 {
			respondValidation(c, errs)
			return
		}
		// The caller's own token is forwarded to the users service
		tx, err := ledger.CreateTransaction(c.Request.Context(), service.CreateTransactionInput{
			UserID: req.UserID,
			Amount: req.Amount.Decimal(),
			Type:   req.Type,
		}, middleware.BearerToken(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}

// ListTransactionsHandler returns all transactions, optionally filtered by type
func ListTransactionsHandler(ledger Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q ListTransactionsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondBadBody(c)
			return
		}
		if errs := ValidateListTransactions(&q); len(errs) > 0 {
			respondValidation(c, errs)
			return
		}
		var filter *domain.TransactionType // nil means no filter
		if q.Type != "" {
			t := domain.TransactionType(q.Type)
			filter = &t
		}
		txs, err := ledger.ListTransactions(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

// GetTransactionHandler returns one transaction
func GetTransactionHandler(ledger Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tx, err := ledger.GetTransaction(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

// DeleteTransactionHandler removes one transaction
func DeleteTransactionHandler(ledger Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ledger.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// BalanceHandler returns the authenticated user's balance
func BalanceHandler(ledger Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c) // Set by JWTAuthMiddleware
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		balance, err := ledger.Balance(c.Request.Context(), caller.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, balance)
	}
}
