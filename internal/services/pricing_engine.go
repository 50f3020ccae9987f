package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

// declaredSubtotalToleranceCents is the rounding slack allowed between a
// client-declared subtotal and the recomputed one.
const declaredSubtotalToleranceCents = 1

// defaultStoreTxTimeout bounds store work when no timeout is configured.
const defaultStoreTxTimeout = 10 * time.Second

// PricingEngine recomputes the authoritative order totals for a cart. Every
// amount is derived from server-side state; client-declared values are only
// compared, never used.
type PricingEngine struct {
	pool         *pgxpool.Pool
	queries      db.Querier
	catalog      *DiscountCatalog
	verification *VerificationDiscountResolver
	tax          *TaxCalculator
	giftCards    *GiftCardLedger
	currency     *CurrencyService
	txTimeout    time.Duration
	logger       *zap.Logger
}

// NewPricingEngine wires the engine. The pool may be nil when only Compute
// (preview) is needed, e.g. in unit tests; Finalize requires it. txTimeout
// bounds all store work per request; non-positive values fall back to the
// default.
func NewPricingEngine(
	pool *pgxpool.Pool,
	queries db.Querier,
	catalog *DiscountCatalog,
	verification *VerificationDiscountResolver,
	tax *TaxCalculator,
	giftCards *GiftCardLedger,
	currency *CurrencyService,
	txTimeout time.Duration,
) *PricingEngine {
	if txTimeout <= 0 {
		txTimeout = defaultStoreTxTimeout
	}
	return &PricingEngine{
		pool:         pool,
		queries:      queries,
		catalog:      catalog,
		verification: verification,
		tax:          tax,
		giftCards:    giftCards,
		currency:     currency,
		txTimeout:    txTimeout,
		logger:       logger.Log,
	}
}

// Compute prices the request without touching shared state: the checkout
// preview path. Calling it twice for unchanged inputs yields identical
// base-currency totals.
func (e *PricingEngine) Compute(ctx context.Context, req business.PricingRequest) (*business.PricingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.txTimeout)
	defer cancel()
	return e.compute(ctx, e.queries, req, false)
}

// Finalize reprices the request inside one transaction that also consumes a
// winning once-only rule, debits gift cards, and writes the immutable totals
// snapshot for the order. Any compare-and-swap loss rolls the whole
// transaction back; the caller retries the entire pricing request.
func (e *PricingEngine) Finalize(ctx context.Context, req business.PricingRequest, orderID uuid.UUID) (*business.PricingResult, error) {
	if e.pool == nil {
		return nil, fmt.Errorf("pricing engine has no connection pool; finalize unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, e.txTimeout)
	defer cancel()

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	qtx := db.New(tx)

	result, err := e.compute(ctx, qtx, req, true)
	if err != nil {
		return nil, err
	}

	if err := e.snapshot(ctx, qtx, req, result, orderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit pricing transaction: %v", ErrStoreUnavailable, err)
	}

	e.logger.Info("Order pricing finalized",
		zap.String("order_id", orderID.String()),
		zap.Int64("total_cents", result.Totals.Total.Cents()),
		zap.String("discount_source", result.Totals.DiscountSource))

	return result, nil
}

// compute runs the fixed pricing pipeline. Stages execute strictly in order;
// each consumes the previous stage's output. When consume is true the
// winning once-only rule and gift cards are mutated through q, which is then
// expected to be transaction-scoped.
func (e *PricingEngine) compute(ctx context.Context, q db.Querier, req business.PricingRequest, consume bool) (*business.PricingResult, error) {
	// Stage 1: validate the cart and recompute the subtotal from catalog
	// prices.
	items, err := e.resolveItems(ctx, q, req.Lines)
	if err != nil {
		return nil, err
	}
	if req.Shipping.Rate.IsNegative() {
		return nil, ErrInvalidShipping
	}

	subtotal := money.Zero()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	if req.DeclaredSubtotalCents != nil {
		declared := money.FromCents(*req.DeclaredSubtotalCents)
		if !subtotal.WithinCents(declared, declaredSubtotalToleranceCents) {
			e.logger.Warn("Declared subtotal mismatch",
				zap.Int64("declared_cents", declared.Cents()),
				zap.Int64("computed_cents", subtotal.Cents()))
			return nil, ErrTotalMismatch
		}
	}

	// Stages 2-3: collect discount candidates from the catalog and the
	// verification context.
	candidates, warnings, err := e.catalog.FindApplicable(ctx, q, items, subtotal, req.PromoCode)
	if err != nil {
		return nil, err
	}
	verCand, err := e.verification.Resolve(ctx, q, req.VerificationType, subtotal)
	if err != nil {
		return nil, err
	}

	// Stage 4: select the winning discount combination.
	winners := selectWinners(candidates, verCand)
	discount := money.Zero()
	freeShipping := false
	for _, w := range winners {
		discount = discount.Add(w.Amount)
		if w.FreeShipping {
			freeShipping = true
		}
	}
	// A discount never exceeds what it discounts.
	discount = discount.Min(subtotal)

	// Stage 5: consume a winning once-only rule inside the finalization
	// transaction only.
	if consume {
		if err := e.consumeOnceOnly(ctx, q, winners); err != nil {
			return nil, err
		}
	}

	// Stage 6: taxable amount. Donation and shipping insurance are never
	// taxed; the provider decides whether shipping is.
	taxable := subtotal.Sub(discount)

	shipping := req.Shipping.Rate
	if freeShipping {
		shipping = money.Zero()
	}

	// Stage 7: tax, with deterministic zero-tax fallback.
	taxResult := e.tax.Calculate(ctx, taxable, shipping, req.Destination)
	if taxResult.NeedsReview {
		warnings = append(warnings, business.PricingWarning{
			Code:    business.WarnTaxFallback,
			Message: "tax could not be calculated; order flagged for tax review",
		})
	}

	// Stage 8: assemble the base-currency total.
	total := taxable.Add(shipping).Add(taxResult.TaxAmount).Add(req.DonationAmount).FloorZero()

	totals := business.OrderTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		DiscountSource: discountSource(winners),
		ShippingCost:   shipping,
		FreeShipping:   freeShipping,
		TaxAmount:      taxResult.TaxAmount,
		TaxRate:        taxResult.Rate,
		NeedsTaxReview: taxResult.NeedsReview,
		DonationAmount: req.DonationAmount,
		Currency:       money.BaseCurrency,
	}

	// Stage 9: gift cards against the assembled total, largest balance
	// first, stopping at zero.
	applications, giftCardTotal, gcWarnings, err := e.applyGiftCards(ctx, q, req.GiftCardCodes, total, consume)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, gcWarnings...)

	totals.GiftCardApplied = giftCardTotal
	totals.Total = total

	result := &business.PricingResult{
		Totals:         totals,
		GiftCards:      applications,
		Warnings:       warnings,
		RemainingTotal: total.Sub(giftCardTotal).FloorZero(),
	}

	// Stage 10: display conversion, presentation only.
	if req.DisplayCurrency != "" && req.DisplayCurrency != money.BaseCurrency {
		rate, err := e.currency.GetDisplayRate(ctx, q, req.DisplayCurrency)
		if err != nil {
			if errors.Is(err, ErrUnknownCurrency) {
				result.Warnings = append(result.Warnings, business.PricingWarning{
					Code:    business.WarnDisplayUnavailable,
					Message: fmt.Sprintf("no exchange rate for %s; showing %s", req.DisplayCurrency, money.BaseCurrency),
				})
			} else {
				return nil, err
			}
		} else {
			result.Display = e.currency.ToDisplayTotals(totals, req.DisplayCurrency, rate)
		}
	}

	return result, nil
}

// resolveItems replaces client lines with catalog-backed items. Unknown or
// inactive products are fatal: pricing never proceeds on untrusted input.
func (e *PricingEngine) resolveItems(ctx context.Context, q db.Querier, lines []business.CartLine) ([]business.CartItem, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		ids = append(ids, line.ProductID)
	}

	products, err := q.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: get products: %v", ErrStoreUnavailable, err)
	}
	byID := make(map[uuid.UUID]db.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]business.CartItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, line.ProductID)
		}
		items = append(items, business.CartItem{
			ProductID:            product.ID,
			UnitPrice:            money.FromCents(product.UnitPriceCents),
			Quantity:             line.Quantity,
			ProductType:          product.ProductType,
			CategoryIDs:          product.CategoryIds,
			ExcludedFromDiscount: product.ExcludedFromDiscount,
		})
	}
	return items, nil
}

// selectWinners applies the stacking rules: compoundable candidates sum with
// at most one non-compoundable winner; the verification discount never
// stacks with anything and wins only by being strictly larger than the whole
// rule-based combination.
func selectWinners(candidates []business.DiscountCandidate, verification *business.DiscountCandidate) []business.DiscountCandidate {
	var winners []business.DiscountCandidate
	combined := money.Zero()

	var best *business.DiscountCandidate
	for i := range candidates {
		c := candidates[i]
		if c.Compoundable {
			winners = append(winners, c)
			combined = combined.Add(c.Amount)
			continue
		}
		if best == nil || betterCandidate(c, *best) {
			best = &candidates[i]
		}
	}
	if best != nil {
		winners = append(winners, *best)
		combined = combined.Add(best.Amount)
	}

	if verification != nil && verification.Amount.GreaterThan(combined) {
		return []business.DiscountCandidate{*verification}
	}
	return winners
}

// betterCandidate reports whether a beats b: larger amount wins, ties fall
// to the more specific source.
func betterCandidate(a, b business.DiscountCandidate) bool {
	if !a.Amount.Equal(b.Amount) {
		return a.Amount.GreaterThan(b.Amount)
	}
	return a.SpecificityRank() < b.SpecificityRank()
}

// consumeOnceOnly flips winning once-only rules to used via compare-and-swap.
// A lost swap means another checkout consumed the rule first: the loser sees
// the rule as already used, not a transient conflict.
func (e *PricingEngine) consumeOnceOnly(ctx context.Context, q db.Querier, winners []business.DiscountCandidate) error {
	for _, w := range winners {
		if !w.OnceOnly {
			continue
		}
		rows, err := q.ConsumeDiscountRule(ctx, db.ConsumeDiscountRuleParams{
			ID:      w.RuleID,
			Version: w.RuleVersion,
		})
		if err != nil {
			return fmt.Errorf("%w: consume discount rule: %v", ErrStoreUnavailable, err)
		}
		if rows == 0 {
			rule, err := q.GetDiscountRuleByCode(ctx, w.Code)
			if err == nil && rule.Status != "active" {
				return fmt.Errorf("%w: %s already used", ErrInvalidPromoCode, w.Code)
			}
			return ErrConcurrentModification
		}
	}
	return nil
}

// applyGiftCards covers the total from the submitted cards, largest balance
// first, stopping once the total reaches zero. Invalid cards degrade to
// warnings. When consume is false the cards are only planned, not debited.
func (e *PricingEngine) applyGiftCards(
	ctx context.Context,
	q db.Querier,
	codes []string,
	total money.Money,
	consume bool,
) ([]business.GiftCardApplication, money.Money, []business.PricingWarning, error) {
	if len(codes) == 0 {
		return nil, money.Zero(), nil, nil
	}

	var warnings []business.PricingWarning

	// Dedupe codes so the same card cannot be applied twice in one order.
	seen := make(map[string]bool, len(codes))
	cards := make([]db.GiftCard, 0, len(codes))
	for _, code := range codes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if seen[normalized] {
			continue
		}
		seen[normalized] = true

		card, err := q.GetGiftCardByCode(ctx, normalized)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				warnings = append(warnings, business.PricingWarning{
					Code:    business.WarnGiftCardInvalid,
					Message: fmt.Sprintf("gift card %s is not valid", normalized),
				})
				continue
			}
			return nil, money.Zero(), nil, fmt.Errorf("%w: get gift card: %v", ErrStoreUnavailable, err)
		}
		cards = append(cards, card)
	}

	// Largest balance first; equal balances break by code so the order is
	// deterministic.
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].BalanceCents != cards[j].BalanceCents {
			return cards[i].BalanceCents > cards[j].BalanceCents
		}
		return cards[i].Code < cards[j].Code
	})

	var applications []business.GiftCardApplication
	applied := money.Zero()
	remaining := total

	for _, card := range cards {
		if !remaining.IsPositive() {
			break
		}
		var app *business.GiftCardApplication
		var err error
		if consume {
			app, err = e.giftCards.Redeem(ctx, q, card.Code, remaining)
		} else {
			app, err = e.giftCards.Plan(ctx, q, card.Code, remaining)
		}
		if err != nil {
			if errors.Is(err, ErrGiftCardInvalid) || errors.Is(err, ErrInsufficientBalance) {
				warnings = append(warnings, business.PricingWarning{
					Code:    business.WarnGiftCardInvalid,
					Message: fmt.Sprintf("gift card %s could not be applied", card.Code),
				})
				continue
			}
			return nil, money.Zero(), nil, err
		}
		if !app.Applied.IsPositive() {
			continue
		}
		applications = append(applications, *app)
		applied = applied.Add(app.Applied)
		remaining = remaining.Sub(app.Applied)
	}

	if applied.LessThan(total) && len(applications) > 0 {
		warnings = append(warnings, business.PricingWarning{
			Code:    business.WarnGiftCardShortfall,
			Message: "gift cards do not cover the full total; remainder due at payment",
		})
	}

	return applications, applied, warnings, nil
}

func discountSource(winners []business.DiscountCandidate) string {
	if len(winners) == 0 {
		return ""
	}
	codes := make([]string, 0, len(winners))
	for _, w := range winners {
		codes = append(codes, w.Code)
	}
	sort.Strings(codes)
	return strings.Join(codes, "+")
}

// snapshot writes the immutable totals record for the order.
func (e *PricingEngine) snapshot(ctx context.Context, q db.Querier, req business.PricingRequest, result *business.PricingResult, orderID uuid.UUID) error {
	params := db.CreateOrderPricingSnapshotParams{
		OrderID:        orderID,
		SubtotalCents:  result.Totals.Subtotal.Cents(),
		DiscountCents:  result.Totals.DiscountAmount.Cents(),
		ShippingCents:  result.Totals.ShippingCost.Cents(),
		TaxCents:       result.Totals.TaxAmount.Cents(),
		TaxRate:        result.Totals.TaxRate,
		DonationCents:  result.Totals.DonationAmount.Cents(),
		GiftCardCents:  result.Totals.GiftCardApplied.Cents(),
		TotalCents:     result.Totals.Total.Cents(),
		Currency:       result.Totals.Currency,
		NeedsTaxReview: result.Totals.NeedsTaxReview,
	}
	if result.Totals.DiscountSource != "" {
		params.DiscountSource = pgtype.Text{String: result.Totals.DiscountSource, Valid: true}
	}
	if result.Display != nil {
		params.DisplayCurrency = pgtype.Text{String: result.Display.Currency, Valid: true}
		params.ExchangeRateUsed = decimal.NullDecimal{Decimal: result.Display.ExchangeRate, Valid: true}
	}

	if _, err := q.CreateOrderPricingSnapshot(ctx, params); err != nil {
		return fmt.Errorf("%w: write pricing snapshot: %v", ErrStoreUnavailable, err)
	}
	return nil
}
