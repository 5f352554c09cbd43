package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one completed sale.
// Invariants: Total == sum(Items.Price) rounded to 2 decimals,
// Paid >= Total, Change == Paid - Total.
// Transactions are NEVER modified or deleted individually; the only
// destructive operation is the bulk session clear.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Date         time.Time       `json:"date"`
	Items        []CartItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Paid         decimal.Decimal `json:"paid"`
	Change       decimal.Decimal `json:"change"`
	BusinessName string          `json:"business_name"`
	Cashier      string          `json:"cashier"`
}
