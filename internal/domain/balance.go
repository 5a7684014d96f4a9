package domain

import "github.com/shopspring/decimal"

// BalanceResponse carries the derived balance of a user; it is never stored
type BalanceResponse struct {
	Amount float64 `json:"amount"`
}

// NewBalanceResponse converts an aggregated amount to its wire shape
func NewBalanceResponse(amount decimal.Decimal) BalanceResponse {
	return BalanceResponse{Amount: amount.Round(AmountScale).InexactFloat64()}
}
