package spendwise

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains functions to handle the export format.
// It should remain human readable, single file, and open cleanly in a spreadsheet.

// ExportCSV writes the user's full expense list to w as CSV, one entry per
// line in ledger order, with the amount column labeled by the user's
// currency.
func ExportCSV(w io.Writer, u *User) error {
	cw := csv.NewWriter(w)

	currency := u.Currency
	if currency == "" {
		currency = "N/A"
	}
	header := []string{"Date", "Category", "Account", fmt.Sprintf("Amount (%s)", currency), "Recorded At"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, e := range u.Expenses {
		record := []string{
			e.Date.String(),
			e.Category,
			string(e.Account),
			e.Amount.String(),
			e.Timestamp.Format(TimestampFormat),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
