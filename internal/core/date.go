package core

import (
	"time"
)

const isoDateLayout = "2006-01-02"

// Date is a calendar day with no time component, always in UTC.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in the server's local date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// ISO formats the date as YYYY-MM-DD. Zero-padded ISO dates compare
// lexicographically in date order, which the storage layer relies on.
func (d Date) ISO() string {
	return d.Format(isoDateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.ISO() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange builds a range and validates its bounds.
func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if end.Before(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// CurrentMonth returns the range from the first to the last day of the
// current local month.
func CurrentMonth() DateRange {
	now := time.Now()
	first := NewDate(now.Year(), int(now.Month()), 1)
	last := Date{Time: first.AddDate(0, 1, -1)}
	return DateRange{Start: first, End: last}
}

// Days returns the number of calendar days in the range, inclusive.
// A range where start equals end spans one day.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start.Time)/(24*time.Hour)) + 1
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day Date) bool {
	return !day.Before(r.Start) && !r.End.Before(day)
}
