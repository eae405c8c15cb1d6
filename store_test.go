package spendwise

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

func TestOpen_missingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Open(missing) = %v, want empty store", err)
	}
	if s.Len() != 0 {
		t.Errorf("store has %d accounts, want 0", s.Len())
	}
}

func TestStore_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sess, err := s.Signup("Alice", "a@x.com", "Abc123", "Abc123", true)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	u := s.User(sess.Email)
	if err := u.Onboard(decimal.NewFromInt(500), "USD", BudgetTopUp); err != nil {
		t.Fatalf("Onboard: %v", err)
	}
	if _, err := u.RecordExpense(decimal.NewFromInt(50), "FOOD", Cash, date.New(2024, 1, 1), testNow); err != nil {
		t.Fatalf("RecordExpense: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// Reload: every field survives.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	u2 := s2.User("a@x.com")
	if u2 == nil {
		t.Fatal("account lost on reload")
	}
	if u2.Email() != "a@x.com" || u2.Name != u.Name || u2.PasswordHash != u.PasswordHash {
		t.Errorf("identity mismatch after reload: %+v", u2)
	}
	if !u2.Onboarded() || !u2.MonthlyBudget.Equal(*u.MonthlyBudget) || u2.Currency != "USD" {
		t.Errorf("onboarding mismatch after reload: budget=%v currency=%q", u2.MonthlyBudget, u2.Currency)
	}
	if !u2.CashBalance.Equal(u.CashBalance) {
		t.Errorf("cash balance = %s, want %s", u2.CashBalance, u.CashBalance)
	}
	if len(u2.Expenses) != 1 {
		t.Fatalf("ledger has %d entries after reload, want 1", len(u2.Expenses))
	}
	e, e2 := u.Expenses[0], u2.Expenses[0]
	if !e2.Amount.Equal(e.Amount) || e2.Category != e.Category || e2.Account != e.Account ||
		e2.Date != e.Date || !e2.Timestamp.Equal(e.Timestamp) {
		t.Errorf("entry mismatch after reload:\n got %+v\nwant %+v", e2, e)
	}

	// Save again: the document is byte-stable.
	if err := s2.Save(); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("persist/reload/persist is not byte-stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

// Stores written before the balance split carry no balance fields; loading
// backfills them to zero.
func TestDecodeUsers_backfillsBalances(t *testing.T) {
	legacy := `{
    "old@x.com": {
        "name": "Old Timer",
        "password": "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
        "created_at": "2023-06-01T10:00:00Z",
        "monthly_budget": 250,
        "currency": "EUR",
        "expenses": [
            {
                "amount": 12.5,
                "category": "FOOD",
                "account": "CASH",
                "date": "2023-06-02",
                "timestamp": "2023-06-02 09:15:00"
            }
        ]
    }
}`
	users, err := DecodeUsers(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("DecodeUsers: %v", err)
	}
	u := users["old@x.com"]
	if u == nil {
		t.Fatal("record not decoded")
	}
	if !u.CashBalance.IsZero() || !u.BankBalance.IsZero() || !u.CreditCardBalance.IsZero() {
		t.Errorf("balances not backfilled to zero: %s %s %s", u.CashBalance, u.BankBalance, u.CreditCardBalance)
	}
	// legacy timestamp form is accepted
	if got := u.Expenses[0].Timestamp; got.Hour() != 9 || got.Minute() != 15 {
		t.Errorf("legacy timestamp = %v", got)
	}
}

func TestSave_leavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Signup("Alice", "a@x.com", "Abc123", "Abc123", true); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "users.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("store dir contains %v, want only users.json", names)
	}
}

func TestEmails_sorted(t *testing.T) {
	s := newTestStore(t)
	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		if _, err := s.Signup("User", email, "Abc123", "Abc123", true); err != nil {
			t.Fatalf("Signup(%s): %v", email, err)
		}
	}
	got := s.Emails()
	want := []string{"a@x.com", "b@x.com", "c@x.com"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Emails() = %v, want %v", got, want)
		}
	}
}
