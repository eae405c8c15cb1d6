package spendwise

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

// User is one account record in the store: identity, onboarding settings,
// account balances and the append-only expense ledger.
//
// MonthlyBudget and Currency are nil/empty until onboarding, and are always
// set together. Balances are plain mutable counters, not derived from the
// ledger.
type User struct {
	Name              string
	PasswordHash      string
	CreatedAt         time.Time
	MonthlyBudget     *decimal.Decimal
	Currency          string
	CashBalance       decimal.Decimal
	BankBalance       decimal.Decimal
	CreditCardBalance decimal.Decimal
	Expenses          []Expense

	email string // the store key; set when loading, not serialized in the record
}

// Email returns the address the record is stored under.
func (u *User) Email() string { return u.email }

// Onboarded reports whether the user completed onboarding (budget and
// currency set).
func (u *User) Onboarded() bool { return u.MonthlyBudget != nil && u.Currency != "" }

// Budget returns the monthly budget as Money, zero-valued before onboarding.
func (u *User) Budget() Money {
	if u.MonthlyBudget == nil {
		return M(0, u.Currency)
	}
	return M(*u.MonthlyBudget, u.Currency)
}

// Balance returns the balance backing the given account.
// ok is false for WALLET, which has no backing balance.
func (u *User) Balance(account Account) (balance decimal.Decimal, ok bool) {
	switch account {
	case Cash:
		return u.CashBalance, true
	case Bank:
		return u.BankBalance, true
	case CreditCard:
		return u.CreditCardBalance, true
	default:
		return decimal.Zero, false
	}
}

// TotalBalance sums the three backed balances.
func (u *User) TotalBalance() decimal.Decimal {
	return u.CashBalance.Add(u.BankBalance).Add(u.CreditCardBalance)
}

// RecordExpense validates and appends a spend event to the ledger, debiting
// the matching balance (WALLET debits nothing). The ledger and the balance
// change together in memory; persisting is the caller's concern.
func (u *User) RecordExpense(amount decimal.Decimal, category string, account Account, on date.Date, now time.Time) (Expense, error) {
	e, err := NewExpense(amount, category, account, on, now)
	if err != nil {
		return Expense{}, err
	}

	u.Expenses = append(u.Expenses, e)
	switch e.Account {
	case Cash:
		u.CashBalance = u.CashBalance.Sub(e.Amount)
	case Bank:
		u.BankBalance = u.BankBalance.Sub(e.Amount)
	case CreditCard:
		u.CreditCardBalance = u.CreditCardBalance.Sub(e.Amount)
	}
	return e, nil
}

// Onboard records the monthly budget and currency. In BudgetTopUp mode the
// parsed amount is added to any existing budget; in BudgetReplace mode it
// overwrites it. Balances are left untouched on repeat calls.
func (u *User) Onboard(budget decimal.Decimal, currency string, mode BudgetMode) error {
	if budget.IsNegative() {
		return validationf("monthly budget cannot be negative")
	}
	if currency == "" {
		return validationf("please select a currency")
	}

	value := budget
	if mode == BudgetTopUp && u.MonthlyBudget != nil {
		value = u.MonthlyBudget.Add(budget)
	}
	u.MonthlyBudget = &value
	u.Currency = currency
	return nil
}

// MarshalJSON emits the record with all fields present and in a stable order,
// so that persist, reload, persist is byte-stable.
func (u *User) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", u.Name)
	w.Append("password", u.PasswordHash)
	w.Append("created_at", u.CreatedAt.Format(time.RFC3339))
	w.Append("monthly_budget", u.MonthlyBudget)
	if u.Currency == "" {
		w.Append("currency", nil)
	} else {
		w.Append("currency", u.Currency)
	}
	w.Append("cash_balance", u.CashBalance)
	w.Append("bank_balance", u.BankBalance)
	w.Append("credit_card_balance", u.CreditCardBalance)
	expenses := u.Expenses
	if expenses == nil {
		expenses = []Expense{}
	}
	w.Append("expenses", expenses)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a record, backfilling balance fields that are absent
// in stores written before the balance split (the one-time migration).
func (u *User) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name              string           `json:"name"`
		PasswordHash      string           `json:"password"`
		CreatedAt         string           `json:"created_at"`
		MonthlyBudget     *decimal.Decimal `json:"monthly_budget"`
		Currency          *string          `json:"currency"`
		CashBalance       *decimal.Decimal `json:"cash_balance"`
		BankBalance       *decimal.Decimal `json:"bank_balance"`
		CreditCardBalance *decimal.Decimal `json:"credit_card_balance"`
		Expenses          []Expense        `json:"expenses"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	created, err := time.Parse(time.RFC3339, temp.CreatedAt)
	if err != nil {
		return fmt.Errorf("invalid created_at %q: %w", temp.CreatedAt, err)
	}

	u.Name = temp.Name
	u.PasswordHash = temp.PasswordHash
	u.CreatedAt = created
	u.MonthlyBudget = temp.MonthlyBudget
	if temp.Currency != nil {
		u.Currency = *temp.Currency
	} else {
		u.Currency = ""
	}
	u.CashBalance = backfill(temp.CashBalance)
	u.BankBalance = backfill(temp.BankBalance)
	u.CreditCardBalance = backfill(temp.CreditCardBalance)
	u.Expenses = temp.Expenses
	return nil
}

// backfill defaults a missing or null balance to zero.
func backfill(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
