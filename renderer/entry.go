// Package renderer turns spendwise reports into markdown strings, ready to
// be printed raw or through a terminal markdown renderer.
package renderer

import (
	"fmt"

	"github.com/kavyad/spendwise"
)

// Entry renders a single expense to a one-line string.
func Entry(e spendwise.Expense, currency string) string {
	return fmt.Sprintf("%s on %s from %s on %s",
		spendwise.M(e.Amount, currency), e.Category, e.Account, e.Date)
}

// entryRow renders an expense as a table row.
func entryRow(e spendwise.Expense, currency string) []string {
	return []string{
		e.Date.String(),
		e.Category,
		string(e.Account),
		spendwise.M(e.Amount, currency).String(),
	}
}
