package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; services never touch transport concerns.
var (
	ErrInvalidProduct   = errors.New("please enter a valid product name and price")
	ErrDuplicateProduct = errors.New("a product with that name already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidCartIndex = errors.New("cart item index out of range")

	ErrEmptyCart      = errors.New("cart is empty")
	ErrNoCheckout     = errors.New("no checkout in progress")
	ErrInvalidPayment = errors.New("paid amount must be a positive number at least equal to the total")

	ErrNotConfirmed    = errors.New("clearing all sessions requires explicit confirmation")
	ErrNoSessions      = errors.New("there are no sessions to clear")
	ErrSessionNotFound = errors.New("session not found")

	ErrNoTransactions = errors.New("no transactions to export")
	ErrNoSales        = errors.New("no sales data for the selected range")
)
