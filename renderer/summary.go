package renderer

import (
	"bytes"
	"fmt"

	"github.com/kavyad/spendwise"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a trailing-window spending summary to markdown.
func SummaryMarkdown(s *spendwise.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Spending Summary on %s", s.AsOf))
	doc.PlainText(fmt.Sprintf("Window: %s to %s (%d entries)", s.Window.From, s.Window.To, s.Count))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Spent"),
			md.Bold(spendwise.M(s.Total, currency).String()),
		},
	})

	if len(s.Categories) > 0 {
		doc.H2("By Category")
		doc.Table(breakdownTable(s.Categories, "Category", currency))
	}

	if len(s.Accounts) > 0 {
		doc.H2("By Account")
		doc.Table(breakdownTable(s.Accounts, "Account", currency))
	}

	return doc.String()
}

func breakdownTable(lines []spendwise.Breakdown, label, currency string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{label, "Amount", "Share"},
	}
	for _, l := range lines {
		table.Rows = append(table.Rows, []string{
			l.Label,
			spendwise.M(l.Amount, currency).String(),
			l.Share.String(),
		})
	}
	return table
}
