package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kavyad/spendwise"
)

type onboardCmd struct {
	budget   string
	currency string
	mode     string
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "set the monthly budget and currency" }
func (*onboardCmd) Usage() string {
	return `sw onboard -budget <amount> -currency <code>

  Sets the monthly budget and the currency of the logged-in account:
  - budget: a decimal amount, comma grouping accepted ("1,500"). "0" or an
    empty value sets a zero budget.
  - currency: a 3-letter code ("USD"), or a selection string like
    "USD - US Dollar ($)".
  - mode: what a repeat onboarding does with the amount: "topup" adds it to
    the existing budget, "replace" overwrites it.
`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "", "Monthly budget amount")
	f.StringVar(&c.currency, "currency", "", "Currency code (required)")
	f.StringVar(&c.mode, "mode", "topup", "Budget mode: topup or replace")
}

func (c *onboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := spendwise.ParseBudgetMode(c.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	sess := spendwise.Session{Email: u.Email(), Name: u.Name}
	if err := store.Onboard(sess, c.budget, c.currency, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Onboarding complete: monthly budget %s.\n", u.Budget())
	return subcommands.ExitSuccess
}
