package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/constants"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

// DiscountCatalog evaluates the three discount sources (product-scoped,
// order-threshold, promo code) into concrete candidates for a cart.
type DiscountCatalog struct {
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewDiscountCatalog creates a catalog evaluating validity windows in the
// store's configured timezone.
func NewDiscountCatalog(loc *time.Location) *DiscountCatalog {
	return &DiscountCatalog{
		loc:    loc,
		logger: logger.Log,
		now:    time.Now,
	}
}

// FindApplicable returns every discount candidate that matches the cart
// right now, plus soft warnings (an unusable promo code is a message, not an
// error). The querier is passed in so the same evaluation runs inside a
// finalization transaction.
func (c *DiscountCatalog) FindApplicable(
	ctx context.Context,
	q db.Querier,
	items []business.CartItem,
	subtotal money.Money,
	promoCode string,
) ([]business.DiscountCandidate, []business.PricingWarning, error) {
	var candidates []business.DiscountCandidate
	var warnings []business.PricingWarning

	rules, err := q.ListActiveDiscountRules(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: list discount rules: %v", ErrStoreUnavailable, err)
	}

	for _, rule := range rules {
		if cand := c.evaluate(rule, items, subtotal, false); cand != nil {
			candidates = append(candidates, *cand)
		}
	}

	if promoCode != "" {
		cand, warn, err := c.resolvePromo(ctx, q, promoCode, items, subtotal)
		if err != nil {
			return nil, nil, err
		}
		// An auto-applied rule resubmitted as the code must not count twice.
		if cand != nil && !ruleAlreadyCandidate(candidates, cand.RuleID) {
			candidates = append(candidates, *cand)
		}
		if warn != nil {
			warnings = append(warnings, *warn)
		}
	}

	return candidates, warnings, nil
}

// resolvePromo looks up the submitted code and evaluates it. Every way the
// code can fail is a warning; checkout proceeds without the discount.
func (c *DiscountCatalog) resolvePromo(
	ctx context.Context,
	q db.Querier,
	code string,
	items []business.CartItem,
	subtotal money.Money,
) (*business.DiscountCandidate, *business.PricingWarning, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	rule, err := q.GetDiscountRuleByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, promoWarning(normalized, "not found"), nil
		}
		return nil, nil, fmt.Errorf("%w: get discount rule: %v", ErrStoreUnavailable, err)
	}

	if rule.Status != constants.DiscountStatusActive {
		return nil, promoWarning(normalized, "no longer active"), nil
	}

	cand := c.evaluate(rule, items, subtotal, true)
	if cand == nil {
		return nil, promoWarning(normalized, "not valid for this cart"), nil
	}
	return cand, nil, nil
}

func ruleAlreadyCandidate(candidates []business.DiscountCandidate, ruleID uuid.UUID) bool {
	for _, c := range candidates {
		if c.RuleID == ruleID {
			return true
		}
	}
	return false
}

func promoWarning(code, reason string) *business.PricingWarning {
	return &business.PricingWarning{
		Code:    business.WarnInvalidPromoCode,
		Message: fmt.Sprintf("promo code %s is %s", code, reason),
	}
}

// evaluate turns one rule into a candidate, or nil when it does not match.
// Malformed rules (bad value, missing required target) are logged and
// treated as no match, never as runtime errors.
func (c *DiscountCatalog) evaluate(
	rule db.DiscountRule,
	items []business.CartItem,
	subtotal money.Money,
	fromCode bool,
) *business.DiscountCandidate {
	if !c.ruleValueValid(rule) {
		c.logger.Warn("Skipping malformed discount rule",
			zap.String("code", rule.Code),
			zap.String("kind", rule.Kind))
		return nil
	}
	if !c.withinValidity(rule) {
		return nil
	}
	// Inclusive cart amount range in cents
	if subtotal.Cents() < rule.CartMinCents || subtotal.Cents() > rule.CartMaxCents {
		return nil
	}

	matched := c.matchedLines(rule, items)
	if len(matched) == 0 {
		return nil
	}

	amount := c.candidateAmount(rule, matched)
	if !amount.IsPositive() {
		return nil
	}

	return &business.DiscountCandidate{
		Source:       c.sourceFor(rule, fromCode),
		Code:         rule.Code,
		RuleID:       rule.ID,
		RuleVersion:  rule.Version,
		Amount:       amount,
		Compoundable: rule.Compoundable,
		FreeShipping: rule.FreeShipping,
		OnceOnly:     rule.OnceOnly,
	}
}

// ruleValueValid enforces the rule invariants: percentages in (0,100],
// fixed amounts positive, range ordered, fixed order-threshold value within
// the range ceiling.
func (c *DiscountCatalog) ruleValueValid(rule db.DiscountRule) bool {
	if rule.CartMinCents > rule.CartMaxCents {
		return false
	}
	switch rule.Kind {
	case constants.DiscountKindPercentage:
		return rule.Value.IsPositive() && rule.Value.LessThanOrEqual(decimal.NewFromInt(100))
	case constants.DiscountKindFixedAmount:
		if !rule.Value.IsPositive() {
			return false
		}
		if rule.Target == constants.DiscountTargetGlobal {
			return money.FromDollars(rule.Value).Cents() <= rule.CartMaxCents
		}
		return true
	default:
		return false
	}
}

// withinValidity checks the date window as inclusive calendar days in the
// store timezone, not as UTC instants.
func (c *DiscountCatalog) withinValidity(rule db.DiscountRule) bool {
	today := c.now().In(c.loc)
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, c.loc)

	if rule.ValidFrom.Valid {
		from := time.Date(rule.ValidFrom.Time.Year(), rule.ValidFrom.Time.Month(), rule.ValidFrom.Time.Day(), 0, 0, 0, 0, c.loc)
		if day.Before(from) {
			return false
		}
	}
	if rule.ValidTo.Valid {
		to := time.Date(rule.ValidTo.Time.Year(), rule.ValidTo.Time.Month(), rule.ValidTo.Time.Day(), 0, 0, 0, 0, c.loc)
		if day.After(to) {
			return false
		}
	}
	return true
}

// matchedLines returns the discount-eligible lines the rule's target covers.
// Product and category targets require a target id; rules missing one match
// nothing.
func (c *DiscountCatalog) matchedLines(rule db.DiscountRule, items []business.CartItem) []business.CartItem {
	var matched []business.CartItem
	for _, item := range items {
		if !item.DiscountEligible() {
			continue
		}
		switch rule.Target {
		case constants.DiscountTargetGlobal:
			matched = append(matched, item)
		case constants.DiscountTargetProduct:
			if rule.TargetID.Valid && item.ProductID == uuid.UUID(rule.TargetID.Bytes) {
				matched = append(matched, item)
			}
		case constants.DiscountTargetCategory:
			if rule.TargetID.Valid && item.InCategory(uuid.UUID(rule.TargetID.Bytes)) {
				matched = append(matched, item)
			}
		case constants.DiscountTargetProductType:
			if rule.TargetProductType.Valid && item.ProductType == rule.TargetProductType.String {
				matched = append(matched, item)
			}
		}
	}
	return matched
}

// candidateAmount computes the discount against the matched lines only,
// capped at their combined total so a discount never exceeds what it applies
// to.
func (c *DiscountCatalog) candidateAmount(rule db.DiscountRule, matched []business.CartItem) money.Money {
	eligible := money.Zero()
	for _, item := range matched {
		eligible = eligible.Add(item.LineTotal())
	}

	var amount money.Money
	switch rule.Kind {
	case constants.DiscountKindPercentage:
		amount = eligible.Percent(rule.Value)
	case constants.DiscountKindFixedAmount:
		unit := money.FromDollars(rule.Value)
		if rule.Target == constants.DiscountTargetGlobal {
			amount = unit
		} else {
			for _, item := range matched {
				if rule.MultiplyByQty {
					amount = amount.Add(unit.MulQty(item.Quantity))
				} else {
					amount = amount.Add(unit)
				}
			}
		}
	}

	return amount.Min(eligible)
}

func (c *DiscountCatalog) sourceFor(rule db.DiscountRule, fromCode bool) string {
	if rule.Target != constants.DiscountTargetGlobal {
		return business.DiscountSourceProduct
	}
	if fromCode {
		return business.DiscountSourcePromo
	}
	return business.DiscountSourceOrder
}
