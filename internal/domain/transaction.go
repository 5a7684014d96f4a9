package domain

import (
	"time" // Timestamps

	"github.com/google/uuid"        // UUID generation
	"github.com/shopspring/decimal" // Fixed-point amounts
	"gorm.io/gorm"                  // GORM ORM library
)

// TransactionType is the direction of a ledger entry
type TransactionType string

const (
	Credit TransactionType = "CREDIT" // Money added
	Debit  TransactionType = "DEBIT"  // Money removed
)

// AmountScale is the number of decimal places stored for amounts
const AmountScale = 2

// Transaction Model. Rows are never updated once written.
type Transaction struct {
	ID        string          `gorm:"type:char(36);primaryKey"`     // Primary key (UUID)
	UserID    string          `gorm:"type:char(36);index;not null"` // Owner, validated against the users service
	Type      TransactionType `gorm:"type:varchar(6);not null"`     // CREDIT or DEBIT
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`  // Non-negative amount
	CreatedAt time.Time       // Set by GORM on insert
	UpdatedAt time.Time       // Set by GORM on insert
}

// BeforeCreate assigns a UUID when the caller did not set one
func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TransactionResponse is the wire shape of a transaction
type TransactionResponse struct {
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
}

// Response maps the stored row to its wire shape
func (t *Transaction) Response() TransactionResponse {
	return TransactionResponse{
		ID:     t.ID,
		UserID: t.UserID,
		Amount: t.Amount.InexactFloat64(),
		Type:   t.Type,
	}
}
