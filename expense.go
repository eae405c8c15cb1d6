package spendwise

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TimestampFormat is the format used to persist the entry-creation instant.
const TimestampFormat = time.RFC3339

// legacyTimestampFormat is the "date + time-of-day" form found in stores
// written before timestamps were normalized to RFC3339.
const legacyTimestampFormat = "2006-01-02 15:04:05"

// Account identifies which balance an expense debits.
type Account string

const (
	Cash       Account = "CASH"
	Bank       Account = "BANK"
	CreditCard Account = "CREDIT CARD"
	Wallet     Account = "WALLET" // Wallet has no backing balance; spends from it debit nothing.
)

// Accounts lists all valid accounts, in display order.
func Accounts() []Account { return []Account{Cash, Bank, CreditCard, Wallet} }

// ParseAccount parses an account label, case-insensitively.
func ParseAccount(s string) (Account, error) {
	switch Account(strings.ToUpper(strings.TrimSpace(s))) {
	case Cash:
		return Cash, nil
	case Bank:
		return Bank, nil
	case CreditCard:
		return CreditCard, nil
	case Wallet:
		return Wallet, nil
	default:
		return "", validationf("unknown account %q, want one of CASH, BANK, CREDIT CARD, WALLET", s)
	}
}

// Categories is the suggested set of expense categories. It is a suggestion
// only: entries may carry any free-form label.
var Categories = []string{"FOOD", "TRANSPORT", "FUEL", "ENTERTAINMENT", "UTILITIES", "SHOPPING", "OTHERS"}

// Expense is a single spend event in a user's ledger.
//
// Date is the calendar day the user assigned to the spend (possibly back- or
// post-dated), while Timestamp is the instant the entry was created and is
// what "most recent" ordering is based on.
type Expense struct {
	Amount    decimal.Decimal
	Category  string
	Account   Account
	Date      date.Date
	Timestamp time.Time
}

// MarshalJSON emits the entry with a stable field order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("account", e.Account)
	w.Append("date", e.Date)
	w.Append("timestamp", e.Timestamp.Format(TimestampFormat))
	return w.MarshalJSON()
}

// UnmarshalJSON decodes an entry, accepting both RFC3339 timestamps and the
// legacy "YYYY-MM-DD HH:MM:SS" form.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		Amount    decimal.Decimal `json:"amount"`
		Category  string          `json:"category"`
		Account   Account         `json:"account"`
		Date      date.Date       `json:"date"`
		Timestamp string          `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	ts, err := time.Parse(TimestampFormat, temp.Timestamp)
	if err != nil {
		ts, err = time.ParseInLocation(legacyTimestampFormat, temp.Timestamp, time.Local)
	}
	if err != nil {
		return fmt.Errorf("invalid expense timestamp %q: %w", temp.Timestamp, err)
	}

	e.Amount = temp.Amount
	e.Category = temp.Category
	e.Account = temp.Account
	e.Date = temp.Date
	e.Timestamp = ts
	return nil
}

// NewExpense validates and builds an entry dated `on`, with the creation
// timestamp composed of `on` and the time-of-day of `now`.
func NewExpense(amount decimal.Decimal, category string, account Account, on date.Date, now time.Time) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, validationf("amount must be greater than zero, got %s", amount)
	}
	if _, err := ParseAccount(string(account)); err != nil {
		return Expense{}, err
	}
	category = strings.ToUpper(strings.TrimSpace(category))
	if category == "" {
		return Expense{}, validationf("category is missing")
	}
	return Expense{
		Amount:    amount,
		Category:  category,
		Account:   account,
		Date:      on,
		Timestamp: on.At(now.Clock()),
	}, nil
}
