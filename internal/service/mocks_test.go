package service

import (
	"context"
	"strconv"

	"wallet_ledger/internal/domain"
	"wallet_ledger/internal/repository"
	"wallet_ledger/internal/userclient"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUserStore implements UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionStore implements TransactionStore
type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionStore) FindAll(ctx context.Context, txType *domain.TransactionType) ([]domain.Transaction, error) {
	args := m.Called(ctx, txType)
	txs, _ := args.Get(0).([]domain.Transaction)
	return txs, args.Error(1)
}

func (m *MockTransactionStore) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*domain.Transaction)
	return tx, args.Error(1)
}

func (m *MockTransactionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionStore) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockUserValidator implements UserValidator
type MockUserValidator struct {
	mock.Mock
}

func (m *MockUserValidator) ValidateUser(ctx context.Context, userID, authToken string) (*userclient.UserProfile, error) {
	args := m.Called(ctx, userID, authToken)
	profile, _ := args.Get(0).(*userclient.UserProfile)
	return profile, args.Error(1)
}

// memLedger is an in-memory TransactionStore that aggregates the way the SQL does
type memLedger struct {
	rows []domain.Transaction
}

func (l *memLedger) Create(_ context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = "tx-" + strconv.Itoa(len(l.rows)+1)
	}
	l.rows = append(l.rows, *tx)
	return nil
}

func (l *memLedger) FindAll(_ context.Context, txType *domain.TransactionType) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, r := range l.rows {
		if txType == nil || r.Type == *txType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *memLedger) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	for i := range l.rows {
		if l.rows[i].ID == id {
			return &l.rows[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (l *memLedger) Delete(context.Context, string) error { return nil }

func (l *memLedger) Balance(_ context.Context, userID string) (decimal.Decimal, error) {
	credit, debit := decimal.Zero, decimal.Zero
	for _, r := range l.rows {
		if r.UserID != userID {
			continue
		}
		switch r.Type {
		case domain.Credit:
			credit = credit.Add(r.Amount)
		case domain.Debit:
			debit = debit.Add(r.Amount)
		}
	}
	return credit.Sub(debit), nil
}
