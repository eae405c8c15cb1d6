package agent

import (
	"fmt"
	"strings"

	"github.com/kavyad/spendwise"
	"github.com/kavyad/spendwise/date"
	"github.com/kavyad/spendwise/renderer"
)

// Briefing renders the state of the user's ledger to a plain-text context
// handed to the Bookkeeper at chat start: overall statistics, 7 and 30 day
// windows, category and account breakdowns, the last 5 entries and the
// budget status.
func Briefing(u *spendwise.User, asOf date.Date) string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "User Information:\n")
	fmt.Fprintf(b, "- Email: %s\n", u.Email())
	fmt.Fprintf(b, "- Name: %s\n", u.Name)
	if u.Onboarded() {
		fmt.Fprintf(b, "- Currency: %s\n", u.Currency)
		fmt.Fprintf(b, "- Monthly Budget: %s\n", u.Budget())
	} else {
		fmt.Fprintf(b, "- Not onboarded yet: no monthly budget or currency set.\n")
	}
	fmt.Fprintf(b, "\n")

	if len(u.Expenses) == 0 {
		fmt.Fprintf(b, "Transaction Data: No expenses recorded yet.\n")
		return b.String()
	}

	allTime := spendwise.NewSummary(u.Expenses, 0, asOf)
	weekly := spendwise.NewSummary(u.Expenses, 7, asOf)
	monthly := spendwise.NewSummary(u.Expenses, 30, asOf)

	fmt.Fprintf(b, "Transaction Data Summary:\n\n")
	fmt.Fprintf(b, "Overall Statistics:\n")
	fmt.Fprintf(b, "- Total Transactions: %d\n", allTime.Count)
	fmt.Fprintf(b, "- Total Spent (All Time): %s\n", spendwise.M(allTime.Total, u.Currency))
	fmt.Fprintf(b, "- Last 7 Days: %s (%d transactions)\n", spendwise.M(weekly.Total, u.Currency), weekly.Count)
	fmt.Fprintf(b, "- Last 30 Days: %s (%d transactions)\n", spendwise.M(monthly.Total, u.Currency), monthly.Count)

	fmt.Fprintf(b, "\nCategory Breakdown:\n")
	writeBreakdown(b, allTime.Categories, u.Currency)
	fmt.Fprintf(b, "\nAccount Breakdown:\n")
	writeBreakdown(b, allTime.Accounts, u.Currency)

	fmt.Fprintf(b, "\nRecent Transactions (Last 5):\n")
	for i, e := range spendwise.RecentEntries(u.Expenses, 5) {
		fmt.Fprintf(b, "%d. %s\n", i+1, renderer.Entry(e, u.Currency))
	}

	if u.Onboarded() && u.Budget().IsPositive() {
		status := spendwise.NewBudgetStatus(u.Budget(), spendwise.M(monthly.Total, u.Currency))
		fmt.Fprintf(b, "\nBudget Status (30 days):\n")
		fmt.Fprintf(b, "- Budget: %s\n", status.Budget)
		fmt.Fprintf(b, "- Spent: %s (%s)\n", status.Spent, status.Used)
		fmt.Fprintf(b, "- Remaining: %s\n", status.Remaining)
		fmt.Fprintf(b, "- Status: %s\n", status.Tier)
	}

	return b.String()
}

func writeBreakdown(b *strings.Builder, lines []spendwise.Breakdown, currency string) {
	for _, l := range lines {
		fmt.Fprintf(b, "- %s: %s (%s)\n", l.Label, spendwise.M(l.Amount, currency), l.Share)
	}
}
