package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

// seedDatedTransactions records transactions dated today, 2 days ago and
// 10 days ago (recorded oldest first so recency order matches reality).
func seedDatedTransactions(t *testing.T, reg *register) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	for _, age := range []int{10, 2, 0} {
		tx := makeTransaction(now.AddDate(0, 0, -age), coffee())
		_, err := reg.sessions.Record(ctx, tx)
		require.NoError(t, err)
	}
}

func TestFilterByRangeWindows(t *testing.T) {
	reg := newRegister(t)
	seedDatedTransactions(t, reg)

	assert.Len(t, reg.reports.FilterByRange(service.RangeWeek), 2)
	assert.Len(t, reg.reports.FilterByRange(service.RangeDay), 1)
	assert.Len(t, reg.reports.FilterByRange(service.RangeMonth), 3)
	assert.Len(t, reg.reports.FilterByRange(service.RangeAll), 3)
	// Unrecognized ranges return everything.
	assert.Len(t, reg.reports.FilterByRange("fortnight"), 3)
}

func TestFilterByRangeLast(t *testing.T) {
	reg := newRegister(t)

	assert.Empty(t, reg.reports.FilterByRange(service.RangeLast))

	seedDatedTransactions(t, reg)
	last := reg.reports.FilterByRange(service.RangeLast)
	require.Len(t, last, 1)
	// Most recent transaction is the one dated today.
	assert.WithinDuration(t, time.Now(), last[0].Date, time.Minute)
}

func TestSummarizeGroupsByNameAndPrice(t *testing.T) {
	reg := newRegister(t)
	now := time.Now()

	txs := []model.Transaction{
		makeTransaction(now, coffee(), model.CartItem{Name: "Tea", Price: dec("1.75")}),
		makeTransaction(now, coffee(), model.CartItem{Name: "Coffee", Price: dec("3.00")}),
	}

	summary := reg.reports.Summarize(txs)
	require.Len(t, summary.Items, 3)

	// First-occurrence order: Coffee@2.50, Tea@1.75, Coffee@3.00.
	assert.Equal(t, "Coffee", summary.Items[0].Name)
	assert.Equal(t, "2.50", summary.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, 2, summary.Items[0].Count)
	assert.Equal(t, "5.00", summary.Items[0].Total.StringFixed(2))

	assert.Equal(t, "Tea", summary.Items[1].Name)
	// Same name, different unit price is its own group.
	assert.Equal(t, "Coffee", summary.Items[2].Name)
	assert.Equal(t, "3.00", summary.Items[2].UnitPrice.StringFixed(2))
	assert.Equal(t, 1, summary.Items[2].Count)

	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, "9.75", summary.Total.StringFixed(2))
}

func TestSummarizeIdempotent(t *testing.T) {
	reg := newRegister(t)
	now := time.Now()
	txs := []model.Transaction{
		makeTransaction(now, coffee(), coffee()),
		makeTransaction(now, coffee()),
	}

	first := reg.reports.Summarize(txs)
	second := reg.reports.Summarize(txs)

	require.Equal(t, len(first.Items), len(second.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].Count, second.Items[i].Count)
		assert.True(t, first.Items[i].Total.Equal(second.Items[i].Total))
	}
	assert.True(t, first.Total.Equal(second.Total))
	assert.Equal(t, first.TransactionCount, second.TransactionCount)
}

// Two transactions each holding one Coffee at 2.50 roll up to a single
// summary item with count 2, total 5.00.
func TestSummaryCoffeeScenario(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()

	_, err := reg.settings.Save(ctx, dto.SaveSettingsRequest{Currency: "$"})
	require.NoError(t, err)

	now := time.Now()
	_, err = reg.sessions.Record(ctx, makeTransaction(now, coffee()))
	require.NoError(t, err)
	_, err = reg.sessions.Record(ctx, makeTransaction(now, coffee()))
	require.NoError(t, err)

	summary := reg.reports.SaleSummary(service.SummaryDaily)
	require.Len(t, summary.Items, 1)
	item := summary.Items[0]
	assert.Equal(t, 2, item.Count)
	assert.Equal(t, "5.00", item.Total.StringFixed(2))
	assert.Equal(t, "Coffee - $2.50 (x2 - $5.00)",
		reg.reports.FormatItemLine(item.Name, item.UnitPrice, item.Count))
}

func TestFormatItemLineSingleUnit(t *testing.T) {
	reg := newRegister(t)
	// Default currency applies until settings change it.
	assert.Equal(t, "Coffee - Rs.2.50", reg.reports.FormatItemLine("Coffee", dec("2.50"), 1))
}

func TestSaleSummaryRanges(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()
	now := time.Now()

	// One sale today, one three days ago.
	_, err := reg.sessions.Record(ctx, makeTransaction(now.AddDate(0, 0, -3), coffee()))
	require.NoError(t, err)
	_, err = reg.sessions.Record(ctx, makeTransaction(now, coffee()))
	require.NoError(t, err)

	daily := reg.reports.SaleSummary(service.SummaryDaily)
	assert.Equal(t, 1, daily.TransactionCount)

	weekly := reg.reports.SaleSummary(service.SummaryWeekly)
	assert.Equal(t, 2, weekly.TransactionCount)

	// Unknown summary ranges yield an empty summary, not "all".
	unknown := reg.reports.SaleSummary("monthly")
	assert.True(t, unknown.Empty())
	assert.Equal(t, 0, unknown.TransactionCount)
}
