package renderer

import (
	"bytes"

	"github.com/kavyad/spendwise"
	md "github.com/nao1215/markdown"
)

// EntriesMarkdown renders a list of expenses as a markdown table under the
// given title. An empty list renders a short notice instead of an empty table.
func EntriesMarkdown(title string, expenses []spendwise.Expense, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Category", "Account", "Amount"},
	}
	for _, e := range expenses {
		table.Rows = append(table.Rows, entryRow(e, currency))
	}
	doc.Table(table)

	return doc.String()
}
