package spendwise

import (
	"sort"

	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

// Breakdown is one aggregated line of a summary: a label (category or
// account) with its total and its share of the summary total.
type Breakdown struct {
	Label  string
	Amount decimal.Decimal
	Share  Percent
}

// Summary aggregates a user's expenses over a trailing window of days.
//
// Only entries whose assigned date falls inside the window contribute; the
// entry-creation timestamp plays no role here (see RecentEntries for the
// timestamp-based query).
type Summary struct {
	AsOf       date.Date
	Window     date.Range
	Count      int
	Total      decimal.Decimal
	Categories []Breakdown // descending by amount, ties in first-seen order
	Accounts   []Breakdown // descending by amount, ties in first-seen order
}

// NewSummary computes the aggregation over [asOf-windowDays+1, asOf],
// both boundaries included. A windowDays <= 0 covers the whole ledger.
func NewSummary(expenses []Expense, windowDays int, asOf date.Date) *Summary {
	window := date.Window(windowDays, asOf)
	s := &Summary{AsOf: asOf, Window: window, Total: decimal.Zero}

	var matched []Expense
	for _, e := range expenses {
		if windowDays <= 0 || window.Contains(e.Date) {
			matched = append(matched, e)
			s.Total = s.Total.Add(e.Amount)
		}
	}
	s.Count = len(matched)
	s.Categories = breakdown(matched, s.Total, func(e Expense) string { return e.Category })
	s.Accounts = breakdown(matched, s.Total, func(e Expense) string { return string(e.Account) })
	return s
}

// breakdown groups the expenses by key and returns totals in descending
// amount order. The sort is stable so equal totals keep first-seen order,
// making results reproducible.
func breakdown(expenses []Expense, total decimal.Decimal, key func(Expense) string) []Breakdown {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range expenses {
		k := key(e)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(e.Amount)
	}

	lines := make([]Breakdown, 0, len(order))
	for _, k := range order {
		var share Percent
		if total.IsPositive() {
			share = Percent(sums[k].Div(total).InexactFloat64() * 100)
		}
		lines = append(lines, Breakdown{Label: k, Amount: sums[k], Share: share})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Amount.GreaterThan(lines[j].Amount)
	})
	return lines
}

// RecentEntries returns the n globally most recent entries by creation
// timestamp, over the whole ledger regardless of any window. This is a
// deliberately separate query from NewSummary: recency is defined by when the
// entry was recorded, totals by the date the spend was assigned to.
func RecentEntries(expenses []Expense, n int) []Expense {
	recent := make([]Expense, len(expenses))
	copy(recent, expenses)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
