package cmd

import (
	"testing"
	"time"

	"github.com/kavyad/spendwise"
	"github.com/kavyad/spendwise/date"
	"github.com/shopspring/decimal"
)

func TestClip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var expenses []spendwise.Expense
	for _, c := range []string{"A", "B", "C", "D"} {
		e, err := spendwise.NewExpense(decimal.NewFromInt(1), c, spendwise.Cash, date.New(2024, 3, 1), now)
		if err != nil {
			t.Fatalf("NewExpense: %v", err)
		}
		expenses = append(expenses, e)
	}

	tests := []struct {
		name string
		head int
		tail int
		want []string
	}{
		{"no limit", 0, 0, []string{"A", "B", "C", "D"}},
		{"head", 2, 0, []string{"A", "B"}},
		{"tail", 0, 3, []string{"B", "C", "D"}},
		{"head larger than list", 10, 0, []string{"A", "B", "C", "D"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := clip(expenses, tc.head, tc.tail)
			if len(got) != len(tc.want) {
				t.Fatalf("clip = %d entries, want %d", len(got), len(tc.want))
			}
			for i, want := range tc.want {
				if got[i].Category != want {
					t.Errorf("clip[%d] = %s, want %s", i, got[i].Category, want)
				}
			}
		})
	}
}
