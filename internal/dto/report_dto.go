package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/model"
)

type SessionListResponse struct {
	Data  []model.Session `json:"data"`
	Total int             `json:"total"`
}

type TransactionListResponse struct {
	Data  []model.Transaction `json:"data"`
	Range string              `json:"range"`
	Total int                 `json:"total"`
}

// SummaryLine is one row of the on-screen sale summary: the formatted item
// label alongside its accumulated figures.
type SummaryLine struct {
	Label string          `json:"label"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type SummaryResponse struct {
	Items        []SummaryLine   `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Transactions int             `json:"transactions"`
}

type ExportRangeRequest struct {
	Range string `json:"range" validate:"required"`
}

type ExportSummaryRequest struct {
	Range string `json:"range" validate:"required,oneof=daily weekly"`
}

type ExportResponse struct {
	File string `json:"file"`
}
