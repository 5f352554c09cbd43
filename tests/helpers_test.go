package tests

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
	"github.com/rajat-ed/nagadiPOS/internal/service"
	"github.com/rajat-ed/nagadiPOS/internal/store"
)

// register bundles a fully wired in-memory application for service tests.
type register struct {
	blobs    *store.MemoryStore
	settings service.SettingsService
	catalog  service.CatalogService
	cart     service.CartService
	checkout service.CheckoutService
	sessions service.SessionService
	reports  service.ReportService
}

func newRegister(t *testing.T) *register {
	t.Helper()
	ctx := context.Background()
	blobs := store.NewMemoryStore()

	settings, err := service.NewSettingsService(ctx, repository.NewSettingsRepository(blobs))
	require.NoError(t, err)
	catalog, err := service.NewCatalogService(ctx, repository.NewCatalogRepository(blobs))
	require.NoError(t, err)
	sessions, err := service.NewSessionService(ctx, repository.NewSessionRepository(blobs))
	require.NoError(t, err)

	cart := service.NewCartService()
	return &register{
		blobs:    blobs,
		settings: settings,
		catalog:  catalog,
		cart:     cart,
		checkout: service.NewCheckoutService(cart, settings),
		sessions: sessions,
		reports:  service.NewReportService(sessions, settings),
	}
}

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

// makeTransaction builds a consistent exact-payment transaction dated at the
// given time.
func makeTransaction(date time.Time, items ...model.CartItem) model.Transaction {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	total = total.Round(2)
	return model.Transaction{
		Date:         date,
		Items:        items,
		Total:        total,
		Paid:         total,
		Change:       decimal.Zero.Round(2),
		BusinessName: model.DefaultBusinessName,
		Cashier:      "Rajat",
	}
}

func coffee() model.CartItem {
	return model.CartItem{Name: "Coffee", Price: dec("2.50")}
}
