package api

import (
	"context"

	"wallet_ledger/internal/domain"
	"wallet_ledger/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserManager implements UserManager
type MockUserManager struct {
	mock.Mock
}

func (m *MockUserManager) Create(ctx context.Context, in service.CreateUserInput) (*domain.UserProfile, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*domain.UserProfile)
	return p, args.Error(1)
}

func (m *MockUserManager) List(ctx context.Context) ([]domain.UserProfile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]domain.UserProfile)
	return p, args.Error(1)
}

func (m *MockUserManager) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.UserProfile)
	return p, args.Error(1)
}

func (m *MockUserManager) Update(ctx context.Context, id string, in service.UpdateUserInput) (*domain.UserProfile, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(*domain.UserProfile)
	return p, args.Error(1)
}

func (m *MockUserManager) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserManager) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	r, _ := args.Get(0).(*service.AuthResult)
	return r, args.Error(1)
}

// MockLedger implements Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CreateTransaction(ctx context.Context, in service.CreateTransactionInput, authToken string) (*domain.TransactionResponse, error) {
	args := m.Called(ctx, in, authToken)
	r, _ := args.Get(0).(*domain.TransactionResponse)
	return r, args.Error(1)
}

func (m *MockLedger) ListTransactions(ctx context.Context, txType *domain.TransactionType) ([]domain.TransactionResponse, error) {
	args := m.Called(ctx, txType)
	r, _ := args.Get(0).([]domain.TransactionResponse)
	return r, args.Error(1)
}

func (m *MockLedger) GetTransaction(ctx context.Context, id string) (*domain.TransactionResponse, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.TransactionResponse)
	return r, args.Error(1)
}

func (m *MockLedger) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedger) Balance(ctx context.Context, userID string) (domain.BalanceResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.BalanceResponse), args.Error(1)
}
