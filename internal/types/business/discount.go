package business

import (
	"github.com/google/uuid"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
)

// Discount candidate sources, ordered by specificity for tie-breaking.
const (
	DiscountSourceProduct      = "product"
	DiscountSourceOrder        = "order"
	DiscountSourcePromo        = "promo"
	DiscountSourceVerification = "verification"
)

// DiscountCandidate is one potential discount computed against the eligible
// subset of the cart. The engine picks winners per the stacking rules.
type DiscountCandidate struct {
	Source       string
	Code         string
	RuleID       uuid.UUID
	RuleVersion  int32
	Amount       money.Money
	Compoundable bool
	FreeShipping bool
	OnceOnly     bool
}

// SpecificityRank returns the tie-break rank of the candidate's source;
// lower wins (product-scoped beats order-threshold beats promo beats
// verification).
func (c DiscountCandidate) SpecificityRank() int {
	switch c.Source {
	case DiscountSourceProduct:
		return 0
	case DiscountSourceOrder:
		return 1
	case DiscountSourcePromo:
		return 2
	case DiscountSourceVerification:
		return 3
	default:
		return 4
	}
}
