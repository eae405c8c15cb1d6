package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kavyad/spendwise"
	"github.com/kavyad/spendwise/date"
	"github.com/kavyad/spendwise/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	days   int
	recent int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a spending summary" }
func (*summaryCmd) Usage() string {
	return `sw summary [-days <n>] [-d <date>]

  Displays the spending over a trailing window of days: total, category and
  account breakdowns, account balances, and the most recently recorded
  entries. The window counts calendar dates of the expenses, the recent list
  goes by recording timestamp.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of trailing days, end date included.")
	f.StringVar(&c.date, "d", "", "End date of the window, today by default.")
	f.IntVar(&c.recent, "recent", 5, "Number of recent entries to list.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf := date.FromTime(now())
	if c.date != "" {
		var err error
		asOf, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	u, err := CurrentUser(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := spendwise.NewSummary(u.Expenses, c.days, asOf)

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(s, u.Currency))
	b.WriteString(renderer.BalancesMarkdown(u))
	if c.recent > 0 {
		recent := spendwise.RecentEntries(u.Expenses, c.recent)
		b.WriteString(renderer.EntriesMarkdown("Recent Expenses", recent, u.Currency))
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
