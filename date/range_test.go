package date

import (
	"testing"
	"time"
)

func TestWindow(t *testing.T) {
	asOf := New(2024, time.January, 31)
	r := Window(7, asOf)

	if want := New(2024, time.January, 25); r.From != want {
		t.Errorf("Window(7).From = %s, want %s", r.From, want)
	}
	if r.To != asOf {
		t.Errorf("Window(7).To = %s, want %s", r.To, asOf)
	}
	if !r.Contains(asOf) || !r.Contains(r.From) {
		t.Error("window boundaries must be inclusive")
	}
	if r.Contains(r.From.Add(-1)) || r.Contains(asOf.Add(1)) {
		t.Error("window must exclude dates outside its boundaries")
	}
}

func TestRangeIdentifier(t *testing.T) {
	testCases := []struct {
		name string
		r    Range
		want string
	}{
		{"daily", NewRange(New(2025, time.August, 14), Daily), "2025-08-14"},
		{"weekly", NewRange(New(2025, time.August, 14), Weekly), "2025-W33"},
		{"monthly", NewRange(New(2025, time.August, 14), Monthly), "2025-08"},
		{"quarterly", NewRange(New(2025, time.August, 14), Quarterly), "2025-Q3"},
		{"yearly", NewRange(New(2025, time.August, 14), Yearly), "2025"},
		{"custom", Range{New(2025, time.August, 2), New(2025, time.August, 20)}, "2025-08-02_2025-08-20"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsInverted(t *testing.T) {
	r := Range{From: New(2025, time.March, 10), To: New(2025, time.March, 1)}
	if !r.IsInverted() {
		t.Error("expected inverted range")
	}
	if r.Contains(New(2025, time.March, 5)) {
		t.Error("inverted range must contain nothing")
	}
}
