package model

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry. Identity is by Name: the catalog
// rejects duplicates so removal and lookup stay unambiguous.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartItem is a snapshot of a Product taken at add-to-cart time.
// Later catalog mutations never touch items already in a cart or a
// recorded transaction.
type CartItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Snapshot copies the product into a cart item.
func (p Product) Snapshot() CartItem {
	return CartItem{Name: p.Name, Price: p.Price}
}
