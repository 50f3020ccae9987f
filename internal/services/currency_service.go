package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

// CurrencyService converts base-currency totals into display currencies
// using the out-of-band refreshed rate table. Conversion is presentation
// only and never touches settlement amounts.
type CurrencyService struct {
	logger *zap.Logger
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{logger: logger.Log}
}

// ErrUnknownCurrency means the rate table has no row for the requested
// display currency.
var ErrUnknownCurrency = errors.New("no exchange rate for currency")

// GetDisplayRate returns the current rate from base currency to the given
// display currency. The base currency itself is always rate 1.
func (s *CurrencyService) GetDisplayRate(ctx context.Context, q db.Querier, currency string) (decimal.Decimal, error) {
	if currency == "" || currency == money.BaseCurrency {
		return decimal.NewFromInt(1), nil
	}
	rate, err := q.GetExchangeRate(ctx, currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, ErrUnknownCurrency
		}
		return decimal.Decimal{}, fmt.Errorf("%w: get exchange rate: %v", ErrStoreUnavailable, err)
	}
	return rate.Rate, nil
}

// ToDisplayTotals derives presentation amounts for every component of the
// totals at the given rate.
func (s *CurrencyService) ToDisplayTotals(totals business.OrderTotals, currency string, rate decimal.Decimal) *business.DisplayTotals {
	return &business.DisplayTotals{
		Currency:     currency,
		ExchangeRate: rate,
		Subtotal:     money.ToDisplay(totals.Subtotal, currency, rate),
		Discount:     money.ToDisplay(totals.DiscountAmount, currency, rate),
		Shipping:     money.ToDisplay(totals.ShippingCost, currency, rate),
		Tax:          money.ToDisplay(totals.TaxAmount, currency, rate),
		Donation:     money.ToDisplay(totals.DonationAmount, currency, rate),
		Total:        money.ToDisplay(totals.Total, currency, rate),
	}
}
