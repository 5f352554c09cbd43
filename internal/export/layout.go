package export

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/model"
)

// A4 portrait geometry (mm). A receipt block is only started when its
// estimated height fits above the bottom margin; the estimate is a fixed
// header height plus one line step per distinct item plus a fixed totals
// block.
const (
	pageTop   = 10.0
	pageLimit = 280.0
	footerY   = 292.0

	centerX   = 105.0
	ruleLeft  = 10.0
	ruleRight = 200.0

	colItem   = 10.0
	colQty    = 130.0
	colRate   = 160.0
	colAmount = 190.0

	lineStep       = 5.0
	headerHeight   = 30.0
	totalsHeight   = 25.0
	maxItemNameLen = 40
)

const footerText = "NagadiPOS by Rajat"

const dateLayout = "02/01/2006 15:04:05"

// receiptLine is one itemized row of a single receipt: grouped by product
// name, unit price taken from the first occurrence.
type receiptLine struct {
	name  string
	price decimal.Decimal
	count int
	total decimal.Decimal
}

func receiptLines(items []model.CartItem) []receiptLine {
	index := make(map[string]int, len(items))
	lines := make([]receiptLine, 0, len(items))
	for _, item := range items {
		i, ok := index[item.Name]
		if !ok {
			index[item.Name] = len(lines)
			lines = append(lines, receiptLine{name: item.Name, price: item.Price})
			i = len(lines) - 1
		}
		lines[i].count++
		lines[i].total = lines[i].total.Add(item.Price)
	}
	return lines
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// LayoutTransactions renders one receipt block per transaction, breaking the
// page whenever the next block's estimate would overflow the usable extent.
func LayoutTransactions(txs []model.Transaction, currency string) []Op {
	var ops []Op
	y := pageTop

	for _, tx := range txs {
		lines := receiptLines(tx.Items)
		estimate := headerHeight + float64(len(lines))*lineStep + totalsHeight
		if y+estimate > pageLimit {
			ops = append(ops, pageBreak())
			y = pageTop
		}

		// Header
		ops = append(ops, text(tx.BusinessName, centerX, y, 14, "B", AlignCenter))
		y += lineStep
		ops = append(ops, text("Cashier: "+tx.Cashier, centerX, y, 10, "", AlignCenter))
		y += lineStep
		ops = append(ops, text("Date: "+tx.Date.Format(dateLayout), centerX, y, 10, "", AlignCenter))
		y += lineStep
		ops = append(ops, rule(y))
		y += lineStep

		// Column headings
		ops = append(ops,
			text("Item", colItem, y, 9, "", AlignLeft),
			text("Qty", colQty, y, 9, "", AlignRight),
			text("Rate", colRate, y, 9, "", AlignRight),
			text("Amount", colAmount, y, 9, "", AlignRight),
		)
		y += 2
		ops = append(ops, rule(y))
		y += lineStep

		// Item rows
		for _, line := range lines {
			if y > pageLimit {
				ops = append(ops, pageBreak())
				y = pageTop
			}
			ops = append(ops,
				text(truncate(line.name, maxItemNameLen), colItem, y, 9, "", AlignLeft),
				text(fmt.Sprintf("%d", line.count), colQty, y, 9, "", AlignRight),
				text(currency+line.price.StringFixed(2), colRate, y, 9, "", AlignRight),
				text(currency+line.total.StringFixed(2), colAmount, y, 9, "", AlignRight),
			)
			y += lineStep
		}

		// Totals block
		y += 2
		ops = append(ops, rule(y))
		y += lineStep
		for _, row := range []struct {
			label  string
			amount decimal.Decimal
		}{
			{"Total", tx.Total},
			{"Paid", tx.Paid},
			{"Change", tx.Change},
		} {
			ops = append(ops,
				text(row.label, colRate, y, 10, "", AlignRight),
				text(currency+row.amount.StringFixed(2), colAmount, y, 10, "", AlignRight),
			)
			y += lineStep
		}
		ops = append(ops, rule(y))
		y += lineStep
		ops = append(ops, text("Thank you!", centerX, y, 8, "", AlignCenter))
		y += lineStep
	}

	ops = append(ops, Op{Kind: OpText, Text: footerText, X: ruleLeft, Y: footerY, Size: 7, Align: AlignLeft, Muted: true})
	return ops
}

// LayoutSummary renders a single itemized sale-summary report.
func LayoutSummary(summary model.SaleSummary, businessName, currency, rangeLabel string, generatedAt time.Time) []Op {
	var ops []Op
	y := pageTop

	ops = append(ops, text(businessName+" Sale Summary", centerX, y, 14, "B", AlignCenter))
	y += lineStep
	ops = append(ops, text(rangeLabel+" Report", centerX, y, 10, "", AlignCenter))
	y += lineStep
	ops = append(ops, text("Generated on: "+generatedAt.Format(dateLayout), centerX, y, 10, "", AlignCenter))
	y += lineStep
	ops = append(ops, rule(y))
	y += lineStep

	ops = append(ops,
		text("Item", colItem, y, 9, "", AlignLeft),
		text("Qty Sold", colQty, y, 9, "", AlignRight),
		text("Total Amount", colAmount, y, 9, "", AlignRight),
	)
	y += 2
	ops = append(ops, rule(y))
	y += lineStep

	for _, item := range summary.Items {
		if y > pageLimit {
			ops = append(ops, pageBreak())
			y = pageTop
		}
		label := fmt.Sprintf("%s - %s%s", item.Name, currency, item.UnitPrice.StringFixed(2))
		ops = append(ops,
			text(truncate(label, maxItemNameLen), colItem, y, 9, "", AlignLeft),
			text(fmt.Sprintf("%d", item.Count), colQty, y, 9, "", AlignRight),
			text(currency+item.Total.StringFixed(2), colAmount, y, 9, "", AlignRight),
		)
		y += lineStep
	}

	y += 2
	ops = append(ops, rule(y))
	y += lineStep
	ops = append(ops,
		text("Total Sales", colRate, y, 10, "", AlignRight),
		text(currency+summary.Total.StringFixed(2), colAmount, y, 10, "", AlignRight),
	)
	y += lineStep
	ops = append(ops,
		text("Transactions", colRate, y, 10, "", AlignRight),
		text(fmt.Sprintf("%d", summary.TransactionCount), colAmount, y, 10, "", AlignRight),
	)
	y += lineStep
	ops = append(ops, rule(y))

	ops = append(ops, Op{Kind: OpText, Text: footerText, X: ruleLeft, Y: footerY, Size: 7, Align: AlignLeft, Muted: true})
	return ops
}
