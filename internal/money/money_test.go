package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := money.FromCents(1250) // $12.50
	b := money.FromCents(750)  // $7.50

	assert.Equal(t, int64(2000), a.Add(b).Cents())
	assert.Equal(t, int64(500), a.Sub(b).Cents())
	assert.Equal(t, int64(3750), a.MulQty(3).Cents())
	assert.Equal(t, int64(750), a.Min(b).Cents())
	assert.Equal(t, int64(750), b.Min(a).Cents())
}

func TestMoney_Percent(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		pct      string
		expected int64
	}{
		{name: "ten percent of 120 dollars", cents: 12000, pct: "10", expected: 1200},
		{name: "rounds half up", cents: 999, pct: "5", expected: 50},   // 49.95 -> 50
		{name: "rounds half down stays", cents: 101, pct: "33", expected: 33}, // 33.33 -> 33
		{name: "full hundred percent", cents: 5500, pct: "100", expected: 5500},
		{name: "fractional percentage", cents: 10000, pct: "7.25", expected: 725},
		{name: "zero amount", cents: 0, pct: "50", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, err := decimal.NewFromString(tt.pct)
			assert.NoError(t, err)
			got := money.FromCents(tt.cents).Percent(pct)
			assert.Equal(t, tt.expected, got.Cents())
		})
	}
}

func TestMoney_FromDollars(t *testing.T) {
	d, _ := decimal.NewFromString("19.99")
	assert.Equal(t, int64(1999), money.FromDollars(d).Cents())

	// Sub-cent amounts round half up
	d, _ = decimal.NewFromString("0.005")
	assert.Equal(t, int64(1), money.FromDollars(d).Cents())
}

func TestMoney_FloorZero(t *testing.T) {
	assert.Equal(t, int64(0), money.FromCents(-500).FloorZero().Cents())
	assert.Equal(t, int64(500), money.FromCents(500).FloorZero().Cents())
	assert.True(t, money.FromCents(-1).IsNegative())
	assert.False(t, money.FromCents(-1).FloorZero().IsNegative())
}

func TestMoney_WithinCents(t *testing.T) {
	a := money.FromCents(5000)

	assert.True(t, a.WithinCents(money.FromCents(5000), 1))
	assert.True(t, a.WithinCents(money.FromCents(5001), 1))
	assert.True(t, a.WithinCents(money.FromCents(4999), 1))
	assert.False(t, a.WithinCents(money.FromCents(5002), 1))
	assert.False(t, a.WithinCents(money.FromCents(4998), 1))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "$12.34", money.FromCents(1234).String())
	assert.Equal(t, "$0.05", money.FromCents(5).String())
	assert.Equal(t, "-$0.50", money.FromCents(-50).String())
	assert.Equal(t, "$0.00", money.Zero().String())
}

func TestToDisplay(t *testing.T) {
	m := money.FromCents(10000) // $100.00

	t.Run("base currency short-circuits at rate 1", func(t *testing.T) {
		got := money.ToDisplay(m, money.BaseCurrency, decimal.NewFromFloat(1.5))
		assert.Equal(t, money.BaseCurrency, got.Currency)
		assert.True(t, got.Rate.Equal(decimal.NewFromInt(1)))
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("converts at given rate", func(t *testing.T) {
		rate, _ := decimal.NewFromString("0.92")
		got := money.ToDisplay(m, "EUR", rate)
		assert.Equal(t, "EUR", got.Currency)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(92)))
	})

	t.Run("rounds display to two places", func(t *testing.T) {
		rate, _ := decimal.NewFromString("0.123456")
		got := money.ToDisplay(m, "GBP", rate)
		expected, _ := decimal.NewFromString("12.35")
		assert.True(t, got.Amount.Equal(expected), "got %s", got.Amount)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		rate, _ := decimal.NewFromString("1.3577")
		first := money.ToDisplay(m, "CAD", rate)
		second := money.ToDisplay(m, "CAD", rate)
		assert.Equal(t, first, second)
	})
}
