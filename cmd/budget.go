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

type budgetCmd struct {
	date string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display the monthly budget status" }
func (*budgetCmd) Usage() string {
	return `sw budget [-d <date>]

  Displays the monthly budget consumption over the last 30 days: budget,
  spent, remaining and the share used.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date of the 30-day window, today by default.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !u.Onboarded() {
		fmt.Fprintln(os.Stderr, "Error: no monthly budget set, run 'sw onboard' first.")
		return subcommands.ExitFailure
	}

	spent := spendwise.NewSummary(u.Expenses, 30, asOf).Total
	status := spendwise.NewBudgetStatus(u.Budget(), spendwise.M(spent, u.Currency))
	printMarkdown(renderer.BudgetMarkdown(status))
	return subcommands.ExitSuccess
}
