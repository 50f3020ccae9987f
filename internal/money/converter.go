package money

import (
	"github.com/shopspring/decimal"
)

// DisplayAmount is a presentation-only amount in a display currency. It is
// recomputed from the base amount on every render and never flows back into
// settlement arithmetic.
type DisplayAmount struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Rate     decimal.Decimal `json:"rate"`
}

// ToDisplay converts a base-currency amount to a display currency at the
// given exchange rate. The base currency short-circuits at rate 1 so an
// unchanged display never drifts from settlement.
func ToDisplay(m Money, currency string, rate decimal.Decimal) DisplayAmount {
	if currency == BaseCurrency {
		return DisplayAmount{
			Currency: BaseCurrency,
			Amount:   m.Decimal(),
			Rate:     decimal.NewFromInt(1),
		}
	}
	return DisplayAmount{
		Currency: currency,
		Amount:   m.Decimal().Mul(rate).Round(2),
		Rate:     rate,
	}
}
