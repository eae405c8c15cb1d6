package renderer

import (
	"bytes"
	"fmt"

	"github.com/kavyad/spendwise"
	md "github.com/nao1215/markdown"
)

// RangeMarkdown renders a custom date-range report to markdown.
func RangeMarkdown(r *spendwise.RangeReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses from %s to %s", r.Range.From, r.Range.To))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Spent"),
			md.Bold(spendwise.M(r.Total, currency).String()),
		},
	})

	if len(r.Matches) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Category", "Account", "Amount"},
		}
		for _, e := range r.Matches {
			table.Rows = append(table.Rows, entryRow(e, currency))
		}
		doc.Table(table)
	}

	return doc.String()
}
