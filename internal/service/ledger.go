package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching

	"wallet_ledger/internal/apperr"     // Error taxonomy
	"wallet_ledger/internal/domain"     // Domain models
	"wallet_ledger/internal/repository" // Persistence
	"wallet_ledger/internal/userclient" // Users service client

	"github.com/shopspring/decimal" // Fixed-point amounts
	"github.com/sirupsen/logrus"    // Logrus for structured logging
)

const msgTransactionNotFound = "Transaction not found"

// TransactionStore is the persistence the ledger needs
type TransactionStore interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	FindAll(ctx context.Context, txType *domain.TransactionType) ([]domain.Transaction, error)
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	Delete(ctx context.Context, id string) error
	Balance(ctx context.Context, userID string) (decimal.Decimal, error)
}

// UserValidator confirms that a user exists in the users service
type UserValidator interface {
	ValidateUser(ctx context.Context, userID, authToken string) (*userclient.UserProfile, error)
}

// CreateTransactionInput is a validated ledger entry request
type CreateTransactionInput struct {
	UserID string
	Amount decimal.Decimal
	Type   domain.TransactionType
}

// LedgerService appends ledger entries and derives balances
type LedgerService struct {
	store TransactionStore
	users UserValidator
}

func NewLedgerService(store TransactionStore, users UserValidator) *LedgerService {
	return &LedgerService{store: store, users: users}
}

// CreateTransaction validates the referenced user remotely, then persists the entry.
// Every failure collapses into one BadRequest; the cause is only logged.
func (s *LedgerService) CreateTransaction(ctx context.Context, in CreateTransactionInput, authToken string) (*domain.TransactionResponse, error) {
	const op = "ledger.CreateTransaction"
	tx, err := s.createTransaction(ctx, in, authToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": in.UserID,
			"amount":  in.Amount.String(),
			"type":    in.Type,
			"error":   err.Error(),
		}).Error("Failed to create transaction")
		return nil, apperr.NewBadRequest(op, "Failed to create transaction", err)
	}
	logrus.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"user_id":        tx.UserID,
		"amount":         tx.Amount.String(),
		"type":           tx.Type,
	}).Info("Transaction created")
	resp := tx.Response()
	return &resp, nil
}

func (s *LedgerService) createTransaction(ctx context.Context, in CreateTransactionInput, authToken string) (*domain.Transaction, error) {
	if authToken == "" {
		return nil, userclient.ErrMissingToken // Nothing to forward, skip the remote call
	}
	if _, err := s.users.ValidateUser(ctx, in.UserID, authToken); err != nil {
		return nil, err
	}
	tx := &domain.Transaction{
		UserID: in.UserID,
		Type:   in.Type,
		Amount: in.Amount.Round(domain.AmountScale), // Match the column precision
	}
	if err := s.store.Create(ctx, tx); err != nil {
		return nil, err // Insert failed after a successful validation
	}
	return tx, nil
}

// ListTransactions returns every transaction, optionally of one type, in storage order
func (s *LedgerService) ListTransactions(ctx context.Context, txType *domain.TransactionType) ([]domain.TransactionResponse, error) {
	txs, err := s.store.FindAll(ctx, txType)
	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve transactions")
		return nil, apperr.NewBadRequest("ledger.ListTransactions", "Failed to retrieve transactions", err)
	}
	out := make([]domain.TransactionResponse, len(txs)) // Never nil, so JSON is [] not null
	for i := range txs {
		out[i] = txs[i].Response()
	}
	return out, nil
}

func (s *LedgerService) GetTransaction(ctx context.Context, id string) (*domain.TransactionResponse, error) {
	const op = "ledger.GetTransaction"
	tx, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound(op, msgTransactionNotFound)
		}
		return nil, apperr.NewInternal(op, err)
	}
	resp := tx.Response()
	return &resp, nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	const op = "ledger.DeleteTransaction"
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NewNotFound(op, msgTransactionNotFound)
		}
		logrus.WithFields(logrus.Fields{"transaction_id": id, "error": err.Error()}).Error("Failed to delete transaction")
		return apperr.NewInternal(op, err)
	}
	logrus.WithField("transaction_id", id).Info("Transaction deleted")
	return nil
}

// Balance is SUM(CREDIT) - SUM(DEBIT) over the user's entries, 0 when there are none
func (s *LedgerService) Balance(ctx context.Context, userID string) (domain.BalanceResponse, error) {
	amount, err := s.store.Balance(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Failed to calculate balance")
		return domain.BalanceResponse{}, apperr.NewBadRequest("ledger.Balance", "Failed to calculate balance", err)
	}
	return domain.NewBalanceResponse(amount), nil
}
