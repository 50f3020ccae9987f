package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the store interface the pricing services depend on. Mocked in
// internal/mocks for unit tests.
type Querier interface {
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	ListActiveDiscountRules(ctx context.Context) ([]DiscountRule, error)
	GetDiscountRuleByCode(ctx context.Context, code string) (DiscountRule, error)
	ConsumeDiscountRule(ctx context.Context, arg ConsumeDiscountRuleParams) (int64, error)
	GetGiftCardByCode(ctx context.Context, code string) (GiftCard, error)
	DebitGiftCard(ctx context.Context, arg DebitGiftCardParams) (int64, error)
	GetVerificationDiscount(ctx context.Context, verificationType string) (VerificationDiscount, error)
	GetExchangeRate(ctx context.Context, currency string) (ExchangeRate, error)
	CreateOrderPricingSnapshot(ctx context.Context, arg CreateOrderPricingSnapshotParams) (OrderPricingSnapshot, error)
}

var _ Querier = (*Queries)(nil)
