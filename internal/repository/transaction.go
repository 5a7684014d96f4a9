package repository

import (
	"context" // Request-scoped cancellation

	"wallet_ledger/internal/domain" // Domain models

	"github.com/shopspring/decimal" // Fixed-point amounts
	"gorm.io/gorm"                  // GORM ORM library
)

// balanceExpr nets credits against debits; COALESCE turns the empty set into 0
const balanceExpr = "COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) - " +
	"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS balance"

// TransactionRepository is the append-only ledger
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return translate(r.db.WithContext(ctx).Create(tx).Error)
}

// FindAll returns every transaction, optionally restricted to one type.
// No ORDER BY: rows come back in storage order.
func (r *TransactionRepository) FindAll(ctx context.Context, txType *domain.TransactionType) ([]domain.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&domain.Transaction{})
	if txType != nil {
		query = query.Where("type = ?", *txType) // Optional type filter
	}
	var txs []domain.Transaction
	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound // Nothing matched the id
	}
	return nil
}

// Balance computes SUM(CREDIT) - SUM(DEBIT) for one user in a single query
func (r *TransactionRepository) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.NullDecimal
	row := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select(balanceExpr, domain.Credit, domain.Debit).
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&balance); err != nil {
		return decimal.Zero, err
	}
	if !balance.Valid {
		return decimal.Zero, nil // No rows for this user
	}
	return balance.Decimal, nil
}
