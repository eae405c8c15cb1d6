package renderer

import (
	"bytes"
	"fmt"

	"github.com/kavyad/spendwise"
	md "github.com/nao1215/markdown"
)

// BudgetMarkdown renders the monthly budget consumption status to markdown.
func BudgetMarkdown(b *spendwise.BudgetStatus) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Budget")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Status"),
			md.Bold(b.Tier.String()),
		},
		Rows: [][]string{
			{"Budget", b.Budget.String()},
			{"Spent", b.Spent.String()},
			{"Remaining", b.Remaining.SignedString()},
			{"Used", b.Used.String()},
		},
	})
	doc.PlainText(fmt.Sprintf("You have used %s of your monthly budget.", b.Used))

	return doc.String()
}
