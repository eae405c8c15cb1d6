package spendwise

import (
	"testing"
	"time"

	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)

func TestRecordExpense_debitsOneBalance(t *testing.T) {
	tests := []struct {
		account Account
		cash    string
		bank    string
		credit  string
	}{
		{Cash, "-50", "0", "0"},
		{Bank, "0", "-50", "0"},
		{CreditCard, "0", "0", "-50"},
		{Wallet, "0", "0", "0"},
	}
	for _, tc := range tests {
		t.Run(string(tc.account), func(t *testing.T) {
			u := &User{}
			_, err := u.RecordExpense(decimal.NewFromInt(50), "FOOD", tc.account, date.New(2024, 1, 1), testNow)
			if err != nil {
				t.Fatalf("RecordExpense: %v", err)
			}
			if len(u.Expenses) != 1 {
				t.Fatalf("ledger has %d entries, want 1", len(u.Expenses))
			}
			if got := u.CashBalance.String(); got != tc.cash {
				t.Errorf("cash balance = %s, want %s", got, tc.cash)
			}
			if got := u.BankBalance.String(); got != tc.bank {
				t.Errorf("bank balance = %s, want %s", got, tc.bank)
			}
			if got := u.CreditCardBalance.String(); got != tc.credit {
				t.Errorf("credit card balance = %s, want %s", got, tc.credit)
			}
		})
	}
}

func TestRecordExpense_validations(t *testing.T) {
	u := &User{}
	on := date.New(2024, 1, 1)

	if _, err := u.RecordExpense(decimal.Zero, "FOOD", Cash, on, testNow); !IsValidation(err) {
		t.Errorf("zero amount: err = %v, want ValidationError", err)
	}
	if _, err := u.RecordExpense(decimal.NewFromInt(-5), "FOOD", Cash, on, testNow); !IsValidation(err) {
		t.Errorf("negative amount: err = %v, want ValidationError", err)
	}
	if _, err := u.RecordExpense(decimal.NewFromInt(5), "", Cash, on, testNow); !IsValidation(err) {
		t.Errorf("empty category: err = %v, want ValidationError", err)
	}
	if _, err := u.RecordExpense(decimal.NewFromInt(5), "FOOD", Account("PAYPAL"), on, testNow); !IsValidation(err) {
		t.Errorf("unknown account: err = %v, want ValidationError", err)
	}
	if len(u.Expenses) != 0 {
		t.Errorf("failed records must not grow the ledger, got %d entries", len(u.Expenses))
	}
}

func TestRecordExpense_timestamp(t *testing.T) {
	u := &User{}
	on := date.New(2023, 12, 25) // back-dated
	e, err := u.RecordExpense(decimal.NewFromInt(5), "food", Cash, on, testNow)
	if err != nil {
		t.Fatalf("RecordExpense: %v", err)
	}
	if e.Category != "FOOD" {
		t.Errorf("category = %q, want uppercased FOOD", e.Category)
	}
	// the timestamp carries the entry date and the current time of day
	if e.Timestamp.Year() != 2023 || e.Timestamp.Month() != 12 || e.Timestamp.Day() != 25 {
		t.Errorf("timestamp date = %v, want 2023-12-25", e.Timestamp)
	}
	h, m, _ := e.Timestamp.Clock()
	if h != 14 || m != 30 {
		t.Errorf("timestamp clock = %02d:%02d, want 14:30", h, m)
	}
}

func TestOnboard_modes(t *testing.T) {
	u := &User{}

	if err := u.Onboard(decimal.NewFromInt(300), "USD", BudgetTopUp); err != nil {
		t.Fatalf("first Onboard: %v", err)
	}
	if got := u.Budget().Amount().String(); got != "300" {
		t.Errorf("budget after first onboard = %s, want 300", got)
	}

	// additive: B1 + B2
	if err := u.Onboard(decimal.NewFromInt(200), "USD", BudgetTopUp); err != nil {
		t.Fatalf("top-up Onboard: %v", err)
	}
	if got := u.Budget().Amount().String(); got != "500" {
		t.Errorf("budget after top-up = %s, want 500", got)
	}

	if err := u.Onboard(decimal.NewFromInt(100), "USD", BudgetReplace); err != nil {
		t.Fatalf("replace Onboard: %v", err)
	}
	if got := u.Budget().Amount().String(); got != "100" {
		t.Errorf("budget after replace = %s, want 100", got)
	}
}

func TestOnboard_validations(t *testing.T) {
	u := &User{}
	if err := u.Onboard(decimal.NewFromInt(-1), "USD", BudgetTopUp); !IsValidation(err) {
		t.Errorf("negative budget: err = %v, want ValidationError", err)
	}
	if err := u.Onboard(decimal.NewFromInt(1), "", BudgetTopUp); !IsValidation(err) {
		t.Errorf("empty currency: err = %v, want ValidationError", err)
	}
	if u.Onboarded() {
		t.Error("failed onboarding must not mark the user onboarded")
	}
}

func TestBalance_wallet(t *testing.T) {
	u := &User{CashBalance: decimal.NewFromInt(10)}
	if _, ok := u.Balance(Wallet); ok {
		t.Error("Balance(Wallet) reported a backing balance")
	}
	if got, ok := u.Balance(Cash); !ok || got.String() != "10" {
		t.Errorf("Balance(Cash) = %s, %v", got, ok)
	}
}
