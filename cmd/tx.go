package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kavyad/spendwise"
	"github.com/kavyad/spendwise/date"
	"github.com/kavyad/spendwise/renderer"
)

type txCmd struct {
	period string
	start  string
	end    string
	query  string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list expenses in the ledger" }
func (*txCmd) Usage() string {
	return `sw tx [-p <period> | -s <start_date>] [-d <end_date>] [-q <term>] [-head <n>] [-tail <n>]

  Lists expenses from the ledger, with options for filtering and limiting the
  output. A custom -s/-d range is inclusive on both ends; an inverted range or
  a range entirely in the future matches nothing.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.end, "d", "", "The end date for the range.")
	f.StringVar(&c.query, "q", "", "Case-insensitive search term on category, account, amount or date.")
	f.IntVar(&c.head, "head", 0, "Show only the first N expenses.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N expenses.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
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

	expenses := spendwise.Search(u.Expenses, c.query)

	today := date.FromTime(now())
	useFullRange := c.start == "" && c.end == "" && c.period == ""

	if !useFullRange {
		end := today
		if c.end != "" {
			end, err = date.Parse(c.end)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}

		var r date.Range
		if c.start != "" {
			start, err := date.Parse(c.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
			r = date.Range{From: start, To: end}
		} else {
			period, err := date.ParsePeriod(c.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitUsageError
			}
			r = date.NewRange(end, period)
		}

		report := spendwise.NewRangeReport(expenses, r, today)
		report.Matches = clip(report.Matches, c.head, c.tail)
		printMarkdown(renderer.RangeMarkdown(report, u.Currency))
		return subcommands.ExitSuccess
	}

	expenses = clip(expenses, c.head, c.tail)
	printMarkdown(renderer.EntriesMarkdown("Expenses", expenses, u.Currency))
	return subcommands.ExitSuccess
}

// clip keeps the first head or the last tail entries.
func clip(expenses []spendwise.Expense, head, tail int) []spendwise.Expense {
	if head > 0 && len(expenses) > head {
		return expenses[:head]
	}
	if tail > 0 && len(expenses) > tail {
		return expenses[len(expenses)-tail:]
	}
	return expenses
}
