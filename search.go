package spendwise

import "strings"

// Search returns the entries matching term as a case-insensitive substring of
// the category, the account, the amount rendered as a string, or the date
// rendered as a string. An empty term matches everything.
func Search(expenses []Expense, term string) []Expense {
	term = strings.ToLower(strings.TrimSpace(term))
	var matches []Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Category), term) ||
			strings.Contains(strings.ToLower(string(e.Account)), term) ||
			strings.Contains(e.Amount.String(), term) ||
			strings.Contains(e.Date.String(), term) {
			matches = append(matches, e)
		}
	}
	return matches
}
