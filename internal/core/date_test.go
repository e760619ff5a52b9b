package core

import "testing"

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.ISO() != "2024-06-01" {
		t.Fatalf("round trip mismatch: %s", d.ISO())
	}

	for _, bad := range []string{"", "2024-6-1", "01-06-2024", "2024-13-01", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestDateRangeDays(t *testing.T) {
	cases := []struct {
		start, end string
		days       int
	}{
		{"2024-06-01", "2024-06-01", 1}, // start == end is one day
		{"2024-06-01", "2024-06-30", 30},
		{"2024-02-01", "2024-02-29", 29}, // leap year
		{"2024-01-01", "2024-12-31", 366},
	}
	for _, tc := range cases {
		start, _ := ParseDate(tc.start)
		end, _ := ParseDate(tc.end)
		rng, err := NewDateRange(start, end)
		if err != nil {
			t.Fatalf("[%s, %s]: %v", tc.start, tc.end, err)
		}
		if got := rng.Days(); got != tc.days {
			t.Fatalf("[%s, %s] expected %d days, got %d", tc.start, tc.end, tc.days, got)
		}
	}
}

func TestNewDateRangeRejectsReversedBounds(t *testing.T) {
	start, _ := ParseDate("2024-06-02")
	end, _ := ParseDate("2024-06-01")
	if _, err := NewDateRange(start, end); err == nil {
		t.Fatal("expected error for end before start")
	}
	if _, err := NewDateRange(Date{}, end); err == nil {
		t.Fatal("expected error for zero start")
	}
}

func TestDateRangeContains(t *testing.T) {
	start, _ := ParseDate("2024-06-10")
	end, _ := ParseDate("2024-06-20")
	rng := DateRange{Start: start, End: end}

	cases := []struct {
		day  string
		want bool
	}{
		{"2024-06-10", true}, // inclusive bounds
		{"2024-06-20", true},
		{"2024-06-15", true},
		{"2024-06-09", false},
		{"2024-06-21", false},
	}
	for _, tc := range cases {
		day, _ := ParseDate(tc.day)
		if got := rng.Contains(day); got != tc.want {
			t.Fatalf("Contains(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestCurrentMonthSpansWholeMonth(t *testing.T) {
	rng := CurrentMonth()
	if rng.Start.Day() != 1 {
		t.Fatalf("expected month to start on day 1, got %d", rng.Start.Day())
	}
	if rng.Start.Month() != rng.End.Month() {
		t.Fatalf("range crosses months: %s .. %s", rng.Start.ISO(), rng.End.ISO())
	}
	if rng.Days() < 28 || rng.Days() > 31 {
		t.Fatalf("implausible month length %d", rng.Days())
	}
}
