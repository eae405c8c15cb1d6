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

type addCmd struct {
	amount   string
	category string
	account  string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `sw add -a <amount> -c <category> [-from <account>] [-d <date>]

  Appends an expense to the ledger and debits the matching account balance:
  - a: a positive decimal amount.
  - c: a free-form category label, stored uppercase (e.g. FOOD, TRANSPORT).
  - from: one of CASH, BANK, CREDIT CARD, WALLET. WALLET debits no balance.
  - d: the calendar date of the spend, today by default. Back- and post-dating
    are allowed.

  Entries are append-only: there is no edit or delete.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Expense amount (required)")
	f.StringVar(&c.category, "c", "", "Expense category (required)")
	f.StringVar(&c.account, "from", string(spendwise.Cash), "Account to debit")
	f.StringVar(&c.date, "d", "", "Date of the expense, today by default")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := spendwise.ParseAccount(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	on := date.FromTime(now())
	if c.date != "" {
		on, err = date.Parse(c.date)
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

	amount, err := spendwise.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e, err := u.RecordExpense(amount, c.category, account, on, now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s\n", renderer.Entry(e, u.Currency))
	return subcommands.ExitSuccess
}
