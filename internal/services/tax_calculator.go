package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/client/taxjar"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/constants"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

// TaxProvider is the external rate/amount lookup the calculator wraps.
type TaxProvider interface {
	TaxForOrder(ctx context.Context, params taxjar.TaxForOrderParams) (*taxjar.TaxForOrderResult, error)
}

// TaxFallbackAction says what a failed provider call degrades to. Both
// actions today are zero tax; the flag controls back-office review.
type TaxFallbackAction struct {
	ZeroTax    bool
	FlagReview bool
}

// TaxFallbackPolicy is the explicit degradation policy for provider calls,
// instead of ad hoc error handling inside the engine.
type TaxFallbackPolicy struct {
	OnTimeout TaxFallbackAction
	OnError   TaxFallbackAction
}

// DefaultTaxFallbackPolicy degrades timeouts to zero tax and other provider
// errors to zero tax plus a manual-review flag.
func DefaultTaxFallbackPolicy() TaxFallbackPolicy {
	return TaxFallbackPolicy{
		OnTimeout: TaxFallbackAction{ZeroTax: true},
		OnError:   TaxFallbackAction{ZeroTax: true, FlagReview: true},
	}
}

// TaxCalculator computes sales tax for a destination, short-circuiting
// jurisdictions we never collect in and degrading provider failures to a
// deterministic zero-tax result so checkout is never blocked on tax.
type TaxCalculator struct {
	provider TaxProvider
	policy   TaxFallbackPolicy
	timeout  time.Duration
	logger   *zap.Logger
}

// NewTaxCalculator creates a calculator over the given provider.
func NewTaxCalculator(provider TaxProvider, policy TaxFallbackPolicy, timeout time.Duration) *TaxCalculator {
	return &TaxCalculator{
		provider: provider,
		policy:   policy,
		timeout:  timeout,
		logger:   logger.Log,
	}
}

// Calculate returns the tax for a taxable amount shipped to the destination.
// It never returns an error: provider failures resolve through the fallback
// policy and are reported on the result.
func (t *TaxCalculator) Calculate(
	ctx context.Context,
	taxable money.Money,
	shipping money.Money,
	destination business.Address,
) business.TaxResult {
	// Non-domestic destinations are out of tax scope, not an error.
	if destination.Country != constants.ServedCountry {
		return business.TaxResult{}
	}
	if constants.NoSalesTaxStates[destination.State] {
		return business.TaxResult{}
	}
	if !taxable.IsPositive() && !shipping.IsPositive() {
		return business.TaxResult{}
	}

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	result, err := t.provider.TaxForOrder(callCtx, taxjar.TaxForOrderParams{
		ToCountry: destination.Country,
		ToState:   destination.State,
		ToCity:    destination.City,
		ToZip:     destination.PostalCode,
		Amount:    taxable.Decimal().InexactFloat64(),
		Shipping:  shipping.Decimal().InexactFloat64(),
	})
	if err != nil {
		return t.fallback(err, destination)
	}

	return business.TaxResult{
		Rate:            decimal.NewFromFloat(result.Rate),
		TaxAmount:       money.FromDollars(decimal.NewFromFloat(result.AmountToCollect)),
		ShippingTaxable: result.FreightTaxable,
		HasNexus:        result.HasNexus,
	}
}

func (t *TaxCalculator) fallback(err error, destination business.Address) business.TaxResult {
	action := t.policy.OnError
	if errors.Is(err, context.DeadlineExceeded) {
		action = t.policy.OnTimeout
	}

	t.logger.Warn("Tax provider call failed, using zero-tax fallback",
		zap.String("state", destination.State),
		zap.String("postal_code", destination.PostalCode),
		zap.Bool("flagged_for_review", action.FlagReview),
		zap.Error(err))

	return business.TaxResult{NeedsReview: action.FlagReview}
}
