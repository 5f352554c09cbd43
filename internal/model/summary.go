package model

import (
	"github.com/shopspring/decimal"
)

// SummaryItem accumulates one (name, unit price) group across a transaction
// set.
type SummaryItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
}

// SaleSummary is the itemized rollup of a transaction set: per-item groups
// in first-occurrence order, plus grand total and transaction count.
type SaleSummary struct {
	Items            []SummaryItem   `json:"items"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transaction_count"`
}

// Empty reports whether the summary covers no sold items.
func (s SaleSummary) Empty() bool {
	return len(s.Items) == 0
}
