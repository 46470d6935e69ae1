package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount cannot be parsed as a
// non-negative fixed-point value with at most two fractional digits.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a non-negative monetary value with two fractional digits.
// The zero value is 0.00.
type Amount struct {
	d decimal.Decimal
}

// ParseAmount parses a decimal string such as "300.00" or "45.5".
// Malformed, negative, or over-precise input fails instead of rounding.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return Amount{}, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}
	return Amount{d: d.Round(2)}, nil
}

// MustParseAmount is like ParseAmount but panics on error. Intended for
// literals in tests and seed tables.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// IsZero reports whether the amount is 0.00.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Equal reports whether both amounts have the same value.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// Float64 returns the nearest float64, for metrics only.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

// Decimal exposes the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String renders the amount with exactly two fractional digits.
func (a Amount) String() string {
	return a.d.StringFixed(2)
}

// MarshalJSON encodes the amount as a quoted fixed-point string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
