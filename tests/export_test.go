package tests

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajat-ed/nagadiPOS/internal/export"
	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

// stubRenderer captures the op sequence instead of producing a PDF.
type stubRenderer struct {
	ops      []export.Op
	filename string
}

func (r *stubRenderer) Render(ops []export.Op, filename string) (string, error) {
	r.ops = ops
	r.filename = filename
	return "/stub/" + filename, nil
}

var _ export.Renderer = (*stubRenderer)(nil)

func countPageBreaks(ops []export.Op) int {
	n := 0
	for _, op := range ops {
		if op.Kind == export.OpPageBreak {
			n++
		}
	}
	return n
}

func TestLayoutTransactionsSinglePage(t *testing.T) {
	tx := makeTransaction(time.Now(), coffee(), coffee())
	ops := export.LayoutTransactions([]model.Transaction{tx}, "Rs.")

	assert.Equal(t, 0, countPageBreaks(ops))

	// Header is the centered business name in bold.
	require.NotEmpty(t, ops)
	head := ops[0]
	assert.Equal(t, export.OpText, head.Kind)
	assert.Equal(t, model.DefaultBusinessName, head.Text)
	assert.Equal(t, export.AlignCenter, head.Align)
	assert.Equal(t, "B", head.Style)

	// Two identical coffees collapse into one itemized row: "x2" quantity.
	var sawQty bool
	for _, op := range ops {
		if op.Kind == export.OpText && op.Text == "2" && op.Align == export.AlignRight {
			sawQty = true
		}
	}
	assert.True(t, sawQty, "expected a quantity cell for the grouped coffee row")
}

func TestLayoutTransactionsPageBreaks(t *testing.T) {
	// Ten single-item receipts: each block advances 64mm against an
	// estimate of 60mm, so pages hold four receipts with breaks before the
	// 5th and 9th.
	txs := make([]model.Transaction, 10)
	for i := range txs {
		txs[i] = makeTransaction(time.Now(), coffee())
	}

	ops := export.LayoutTransactions(txs, "Rs.")
	assert.Equal(t, 2, countPageBreaks(ops))
}

func TestLayoutSummary(t *testing.T) {
	summary := model.SaleSummary{
		Items: []model.SummaryItem{
			{Name: "Coffee", UnitPrice: dec("2.50"), Count: 2, Total: dec("5.00")},
		},
		Total:            dec("5.00"),
		TransactionCount: 2,
	}

	ops := export.LayoutSummary(summary, "NagadiPOS", "$", "Daily", time.Now())

	var texts []string
	for _, op := range ops {
		if op.Kind == export.OpText {
			texts = append(texts, op.Text)
		}
	}
	assert.Contains(t, texts, "NagadiPOS Sale Summary")
	assert.Contains(t, texts, "Daily Report")
	assert.Contains(t, texts, "Coffee - $2.50")
	assert.Contains(t, texts, "Total Sales")
	assert.Contains(t, texts, "$5.00")
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, "My-Shop_1_week_2026-08-30-09-15-00.pdf",
		export.FileName("My Shop", export.RangeLabel("1week"), at))
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "Last_Bill", export.RangeLabel("last"))
	assert.Equal(t, "1_day", export.RangeLabel("1day"))
	assert.Equal(t, "3_months", export.RangeLabel("3months"))
	assert.Equal(t, "all", export.RangeLabel("all"))
}

func TestPDFRendererWritesFile(t *testing.T) {
	dir := t.TempDir()
	renderer := export.NewPDFRenderer(dir)

	tx := makeTransaction(time.Now(), coffee())
	ops := export.LayoutTransactions([]model.Transaction{tx}, "Rs.")

	path, err := renderer.Render(ops, "smoke.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "smoke.pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportServiceEmptyCases(t *testing.T) {
	reg := newRegister(t)
	renderer := &stubRenderer{}
	exports := service.NewExportService(reg.reports, reg.sessions, reg.settings, renderer)
	ctx := context.Background()

	_, err := exports.ExportRange(ctx, service.RangeAll)
	assert.ErrorIs(t, err, service.ErrNoTransactions)

	_, err = exports.ExportSession(ctx, "20990101_Nobody_Ghost_0001")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	_, err = exports.ExportSummary(ctx, service.SummaryDaily)
	assert.ErrorIs(t, err, service.ErrNoSales)
}

func TestExportServiceRange(t *testing.T) {
	reg := newRegister(t)
	renderer := &stubRenderer{}
	exports := service.NewExportService(reg.reports, reg.sessions, reg.settings, renderer)
	ctx := context.Background()

	_, err := reg.sessions.Record(ctx, makeTransaction(time.Now(), coffee()))
	require.NoError(t, err)

	path, err := exports.ExportRange(ctx, service.RangeWeek)
	require.NoError(t, err)
	assert.Contains(t, path, "NagadiPOS_1_week_")
	assert.NotEmpty(t, renderer.ops)
	assert.True(t, strings.HasSuffix(renderer.filename, ".pdf"))
}

func TestExportServiceSession(t *testing.T) {
	reg := newRegister(t)
	renderer := &stubRenderer{}
	exports := service.NewExportService(reg.reports, reg.sessions, reg.settings, renderer)
	ctx := context.Background()

	session, err := reg.sessions.Record(ctx, makeTransaction(time.Now(), coffee()))
	require.NoError(t, err)

	path, err := exports.ExportSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Contains(t, path, "Session_"+session.SessionID)
}
