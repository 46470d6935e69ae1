package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidDate is returned when a date string is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without a time-of-day component.
// The zero value is the empty date and renders as "".
type Date struct {
	d civil.Date
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{d: civil.DateOf(t)}
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{d: civil.Date{Year: year, Month: month, Day: day}}
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{d: d}, nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.d.IsZero() }

// Year returns the calendar year.
func (d Date) Year() int { return d.d.Year }

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.d.Before(o.d) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.d.After(o.d) }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date { return Date{d: d.d.AddDays(n)} }

// DaysUntil returns the number of whole days from d to o (negative if o is earlier).
func (d Date) DaysUntil(o Date) int { return o.d.DaysSince(d.d) }

// String renders the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.d.String()
}

// MarshalJSON encodes the date as a quoted string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes "YYYY-MM-DD"; "" and null decode to the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || string(data) == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
