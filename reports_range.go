package spendwise

import (
	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

// RangeReport is the result of filtering a ledger by a custom date range.
type RangeReport struct {
	Range   date.Range
	Total   decimal.Decimal
	Matches []Expense
}

// NewRangeReport filters entries whose date falls inside r, boundaries
// included. It fails closed: an inverted range (From after To), or a range
// that lies entirely in the future relative to today, reports zero matches
// rather than erroring.
func NewRangeReport(expenses []Expense, r date.Range, today date.Date) *RangeReport {
	report := &RangeReport{Range: r, Total: decimal.Zero}
	if r.IsInverted() || r.From.After(today) {
		return report
	}

	for _, e := range expenses {
		if r.Contains(e.Date) {
			report.Matches = append(report.Matches, e)
			report.Total = report.Total.Add(e.Amount)
		}
	}
	return report
}

// SpentIn sums the amounts of entries dated inside r.
func SpentIn(expenses []Expense, r date.Range) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if r.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total
}
