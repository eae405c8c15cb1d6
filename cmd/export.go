package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kavyad/spendwise"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the expense ledger to CSV" }
func (*exportCmd) Usage() string {
	return `sw export [-o <file>]

  Writes the logged-in account's expenses as CSV, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout by default.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	w := os.Stdout
	if c.output != "" {
		w, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := spendwise.ExportCSV(w, u); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d expenses to %s\n", len(u.Expenses), c.output)
	}
	return subcommands.ExitSuccess
}
