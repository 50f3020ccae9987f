package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the settlement currency. Every Money value is denominated
// in it; other currencies exist only as derived DisplayAmounts.
const BaseCurrency = "USD"

var oneHundred = decimal.NewFromInt(100)

// Money is a base-currency amount held as integer cents. All business
// arithmetic goes through Money so no float ever touches a settlement value.
type Money struct {
	cents int64
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// FromCents builds a Money from integer cents.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromDollars builds a Money from a decimal dollar amount, rounding half-up
// to the nearest cent.
func FromDollars(d decimal.Decimal) Money {
	return Money{cents: d.Mul(oneHundred).Round(0).IntPart()}
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount as a decimal dollar value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{cents: m.cents - o.cents}
}

// MulQty returns m multiplied by an item quantity.
func (m Money) MulQty(qty int32) Money {
	return Money{cents: m.cents * int64(qty)}
}

// Percent returns pct percent of m, rounded half-up to the nearest cent.
// Percent(decimal 10) of $120.00 is $12.00.
func (m Money) Percent(pct decimal.Decimal) Money {
	return FromDollars(m.Decimal().Mul(pct).Div(oneHundred))
}

// Min returns the smaller of m and o.
func (m Money) Min(o Money) Money {
	if o.cents < m.cents {
		return o
	}
	return m
}

// FloorZero clamps negative amounts to zero.
func (m Money) FloorZero() Money {
	if m.cents < 0 {
		return Money{}
	}
	return m
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// LessThan reports m < o.
func (m Money) LessThan(o Money) bool {
	return m.cents < o.cents
}

// GreaterThan reports m > o.
func (m Money) GreaterThan(o Money) bool {
	return m.cents > o.cents
}

// Equal reports m == o.
func (m Money) Equal(o Money) bool {
	return m.cents == o.cents
}

// WithinCents reports whether m and o differ by at most tolerance cents.
// Used for validating client-declared totals against recomputed ones.
func (m Money) WithinCents(o Money, tolerance int64) bool {
	diff := m.cents - o.cents
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// String formats the amount as a dollar string, e.g. "$12.34" or "-$0.50".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
