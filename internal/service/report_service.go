package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/model"
)

// Range filter values accepted by FilterByRange.
const (
	RangeLast     = "last"
	RangeDay      = "1day"
	RangeWeek     = "1week"
	RangeMonth    = "1month"
	Range3Months  = "3months"
	Range6Months  = "6months"
	RangeYear     = "1year"
	RangeAll      = "all"
	SummaryDaily  = "daily"
	SummaryWeekly = "weekly"
)

// ReportService computes date-range filters and itemized rollups over the
// aggregator-wide transaction set.
type ReportService interface {
	FilterByRange(rng string) []model.Transaction
	Summarize(txs []model.Transaction) model.SaleSummary
	SaleSummary(rng string) model.SaleSummary
	FormatItemLine(name string, price decimal.Decimal, count int) string
}

type reportService struct {
	sessions SessionService
	settings SettingsService
	now      func() time.Time
}

func NewReportService(sessions SessionService, settings SettingsService) ReportService {
	return &reportService{sessions: sessions, settings: settings, now: time.Now}
}

// FilterByRange selects transactions within a relative window from now.
// "last" is the single most recent transaction; unrecognized ranges return
// everything.
func (s *reportService) FilterByRange(rng string) []model.Transaction {
	all := s.sessions.AllTransactions()
	now := s.now()

	var cutoff time.Time
	switch rng {
	case RangeLast:
		if len(all) == 0 {
			return []model.Transaction{}
		}
		return all[:1]
	case RangeDay:
		cutoff = now.AddDate(0, 0, -1)
	case RangeWeek:
		cutoff = now.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = now.AddDate(0, -1, 0)
	case Range3Months:
		cutoff = now.AddDate(0, -3, 0)
	case Range6Months:
		cutoff = now.AddDate(0, -6, 0)
	case RangeYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return all
	}

	filtered := make([]model.Transaction, 0, len(all))
	for _, tx := range all {
		if !tx.Date.Before(cutoff) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Summarize groups items by (name, unit price) across the given
// transactions. Group order is first-occurrence order, not sorted: the
// report reads in the order things were sold.
func (s *reportService) Summarize(txs []model.Transaction) model.SaleSummary {
	type groupKey struct {
		name  string
		price string
	}

	summary := model.SaleSummary{
		Items:            []model.SummaryItem{},
		TransactionCount: len(txs),
	}
	index := make(map[groupKey]int)

	for _, tx := range txs {
		summary.Total = summary.Total.Add(tx.Total)
		for _, item := range tx.Items {
			k := groupKey{name: item.Name, price: item.Price.StringFixed(2)}
			i, ok := index[k]
			if !ok {
				index[k] = len(summary.Items)
				summary.Items = append(summary.Items, model.SummaryItem{
					Name:      item.Name,
					UnitPrice: item.Price,
				})
				i = len(summary.Items) - 1
			}
			summary.Items[i].Count++
			summary.Items[i].Total = summary.Items[i].Total.Add(item.Price)
		}
	}
	return summary
}

// SaleSummary rolls up the daily or weekly window. Any other range yields
// an empty summary.
func (s *reportService) SaleSummary(rng string) model.SaleSummary {
	switch rng {
	case SummaryDaily:
		return s.Summarize(s.FilterByRange(RangeDay))
	case SummaryWeekly:
		return s.Summarize(s.FilterByRange(RangeWeek))
	default:
		return model.SaleSummary{Items: []model.SummaryItem{}}
	}
}

// FormatItemLine renders "name - <currency>price", appending the count and
// group total when more than one unit was sold.
func (s *reportService) FormatItemLine(name string, price decimal.Decimal, count int) string {
	currency := s.settings.Get().Currency
	line := fmt.Sprintf("%s - %s%s", name, currency, price.StringFixed(2))
	if count > 1 {
		total := price.Mul(decimal.NewFromInt(int64(count)))
		line += fmt.Sprintf(" (x%d - %s%s)", count, currency, total.StringFixed(2))
	}
	return line
}
