package service

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/model"
)

// CartService holds the transient item list of the in-progress sale.
// The cart is never persisted: abandoning it leaves no trace.
type CartService interface {
	Add(p model.Product)
	Remove(index int) error
	Clear()
	Items() []model.CartItem
	Total() decimal.Decimal
	Len() int
}

type cartService struct {
	mu    sync.Mutex
	items []model.CartItem
}

func NewCartService() CartService {
	return &cartService{}
}

// Add appends a snapshot of the product. Duplicates by name are allowed:
// each add is one unit sold.
func (s *cartService) Add(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p.Snapshot())
}

func (s *cartService) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return ErrInvalidCartIndex
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

func (s *cartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *cartService) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total sums item prices, monetary-rounded to 2 decimal places.
func (s *cartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price)
	}
	return total.Round(2)
}

func (s *cartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
