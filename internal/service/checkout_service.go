package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/model"
)

// CheckoutState is the engine's position in the sale flow.
type CheckoutState int

const (
	// CheckoutIdle means no checkout is in progress.
	CheckoutIdle CheckoutState = iota
	// CheckoutAwaitingPayment means the cart was reviewed and the engine
	// is waiting for the paid amount.
	CheckoutAwaitingPayment
)

// defaultCashier is used when the identity collaborator supplies no name.
const defaultCashier = "User"

// CheckoutService validates payment and turns the cart into a finalized
// Transaction. Handing the transaction to the session aggregator is the
// caller's responsibility; the engine knows nothing about sessions.
type CheckoutService interface {
	Start(ctx context.Context) (*dto.CheckoutView, error)
	Evaluate(paid decimal.Decimal) dto.PaymentEvaluation
	Complete(ctx context.Context, req dto.CompleteCheckoutRequest) (*model.Transaction, error)
	State() CheckoutState
}

type checkoutService struct {
	mu       sync.Mutex
	cart     CartService
	settings SettingsService
	state    CheckoutState
	now      func() time.Time
}

func NewCheckoutService(cart CartService, settings SettingsService) CheckoutService {
	return &checkoutService{cart: cart, settings: settings, now: time.Now}
}

// EvaluatePayment is the pure payment rule: change is never negative and
// validity requires a positive paid amount covering the total. It never
// fails: absent or garbage input arrives here as zero.
func EvaluatePayment(total, paid decimal.Decimal) dto.PaymentEvaluation {
	change := paid.Sub(total).Round(2)
	if change.IsNegative() {
		change = decimal.Zero.Round(2)
	}
	return dto.PaymentEvaluation{
		Change: change,
		Valid:  paid.IsPositive() && !paid.LessThan(total),
	}
}

func (s *checkoutService) Start(_ context.Context) (*dto.CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	currency := s.settings.Get().Currency
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s - %s%s", item.Name, currency, item.Price.StringFixed(2)))
	}

	s.state = CheckoutAwaitingPayment
	return &dto.CheckoutView{
		Items: items,
		Lines: lines,
		Total: s.cart.Total(),
	}, nil
}

func (s *checkoutService) Evaluate(paid decimal.Decimal) dto.PaymentEvaluation {
	return EvaluatePayment(s.cart.Total(), paid)
}

func (s *checkoutService) Complete(_ context.Context, req dto.CompleteCheckoutRequest) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != CheckoutAwaitingPayment {
		return nil, ErrNoCheckout
	}
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := s.cart.Total()
	if eval := EvaluatePayment(total, req.Paid); !eval.Valid {
		return nil, ErrInvalidPayment
	}

	cashier := strings.TrimSpace(req.Cashier)
	if cashier == "" {
		cashier = defaultCashier
	}

	paid := req.Paid.Round(2)
	tx := &model.Transaction{
		ID:           uuid.New(),
		Date:         s.now(),
		Items:        items,
		Total:        total,
		Paid:         paid,
		Change:       paid.Sub(total).Round(2),
		BusinessName: s.settings.Get().DisplayBusinessName(),
		Cashier:      cashier,
	}

	s.cart.Clear()
	s.state = CheckoutIdle
	return tx, nil
}

func (s *checkoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
