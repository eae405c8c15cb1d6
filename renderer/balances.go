package renderer

import (
	"bytes"

	"github.com/kavyad/spendwise"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the per-account balances of a user to markdown.
// WALLET is omitted, it carries no tracked balance.
func BalancesMarkdown(u *spendwise.User) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Account Balances")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total"),
			md.Bold(spendwise.M(u.TotalBalance(), u.Currency).String()),
		},
	}
	for _, account := range spendwise.Accounts() {
		balance, ok := u.Balance(account)
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{
			string(account),
			spendwise.M(balance, u.Currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
