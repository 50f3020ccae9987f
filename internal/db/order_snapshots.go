package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const createOrderPricingSnapshot = `-- name: CreateOrderPricingSnapshot :one
INSERT INTO order_pricing_snapshots (
    order_id, subtotal_cents, discount_cents, discount_source,
    shipping_cents, tax_cents, tax_rate, donation_cents, gift_card_cents,
    total_cents, currency, display_currency, exchange_rate_used,
    needs_tax_review
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING id, order_id, subtotal_cents, discount_cents, discount_source,
          shipping_cents, tax_cents, tax_rate, donation_cents,
          gift_card_cents, total_cents, currency, display_currency,
          exchange_rate_used, needs_tax_review, created_at
`

// CreateOrderPricingSnapshotParams is the write-once totals record attached
// to an order.
type CreateOrderPricingSnapshotParams struct {
	OrderID          uuid.UUID
	SubtotalCents    int64
	DiscountCents    int64
	DiscountSource   pgtype.Text
	ShippingCents    int64
	TaxCents         int64
	TaxRate          decimal.Decimal
	DonationCents    int64
	GiftCardCents    int64
	TotalCents       int64
	Currency         string
	DisplayCurrency  pgtype.Text
	ExchangeRateUsed decimal.NullDecimal
	NeedsTaxReview   bool
}

func (q *Queries) CreateOrderPricingSnapshot(ctx context.Context, arg CreateOrderPricingSnapshotParams) (OrderPricingSnapshot, error) {
	row := q.db.QueryRow(ctx, createOrderPricingSnapshot,
		arg.OrderID,
		arg.SubtotalCents,
		arg.DiscountCents,
		arg.DiscountSource,
		arg.ShippingCents,
		arg.TaxCents,
		arg.TaxRate,
		arg.DonationCents,
		arg.GiftCardCents,
		arg.TotalCents,
		arg.Currency,
		arg.DisplayCurrency,
		arg.ExchangeRateUsed,
		arg.NeedsTaxReview,
	)
	var i OrderPricingSnapshot
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.SubtotalCents,
		&i.DiscountCents,
		&i.DiscountSource,
		&i.ShippingCents,
		&i.TaxCents,
		&i.TaxRate,
		&i.DonationCents,
		&i.GiftCardCents,
		&i.TotalCents,
		&i.Currency,
		&i.DisplayCurrency,
		&i.ExchangeRateUsed,
		&i.NeedsTaxReview,
		&i.CreatedAt,
	)
	return i, err
}
