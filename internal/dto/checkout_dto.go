package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/model"
)

type AddCartItemRequest struct {
	Name string `json:"name" validate:"required"`
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

// CheckoutView is what the rendering collaborator shows while awaiting
// payment: the raw items plus their pre-formatted display lines.
type CheckoutView struct {
	Items []model.CartItem `json:"items"`
	Lines []string         `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

// EvaluatePaymentRequest carries the tendered amount. No validation tags:
// evaluation never fails, and a missing or malformed amount counts as zero.
type EvaluatePaymentRequest struct {
	Paid decimal.Decimal `json:"paid"`
}

type PaymentEvaluation struct {
	Change decimal.Decimal `json:"change"`
	Valid  bool            `json:"valid"`
}

type CompleteCheckoutRequest struct {
	Paid    decimal.Decimal `json:"paid" validate:"required"`
	Cashier string          `json:"cashier" validate:"required"`
}

type CompleteCheckoutResponse struct {
	Transaction model.Transaction `json:"transaction"`
	SessionID   string            `json:"session_id"`
}
