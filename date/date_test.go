package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	// Day 0 of a month is the last day of the previous month.
	got := New(2025, time.March, 0)
	want := New(2025, time.February, 28)
	if got != want {
		t.Errorf("New(2025, March, 0) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-01", want: New(2024, time.January, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "2024-13-01", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected an error, got %s", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestStartEndOf(t *testing.T) {
	d := New(2025, time.August, 14) // a Thursday

	testCases := []struct {
		name      string
		period    Period
		wantStart Date
		wantEnd   Date
	}{
		{"daily", Daily, d, d},
		{"weekly", Weekly, New(2025, time.August, 11), New(2025, time.August, 17)},
		{"monthly", Monthly, New(2025, time.August, 1), New(2025, time.August, 31)},
		{"quarterly", Quarterly, New(2025, time.July, 1), New(2025, time.September, 30)},
		{"yearly", Yearly, New(2025, time.January, 1), New(2025, time.December, 31)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.StartOf(tc.period); got != tc.wantStart {
				t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.wantStart)
			}
			if got := d.EndOf(tc.period); got != tc.wantEnd {
				t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.wantEnd)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.February, 29)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"2024-02-29"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
