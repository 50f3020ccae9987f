package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Product carries the authoritative unit price and discount metadata for a
// catalog item.
type Product struct {
	ID                   uuid.UUID
	Sku                  string
	Name                 string
	ProductType          string
	UnitPriceCents       int64
	CategoryIds          []uuid.UUID
	ExcludedFromDiscount bool
	Active               bool
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

// DiscountRule is one admin-managed discount. Codes are stored
// uppercase-normalized. Version supports optimistic concurrency on consume.
type DiscountRule struct {
	ID                uuid.UUID
	Code              string
	Kind              string
	Value             decimal.Decimal
	Target            string
	TargetID          pgtype.UUID
	TargetProductType pgtype.Text
	CartMinCents      int64
	CartMaxCents      int64
	ValidFrom         pgtype.Date
	ValidTo           pgtype.Date
	Status            string
	AutoApply         bool
	OnceOnly          bool
	Compoundable      bool
	FreeShipping      bool
	MultiplyByQty     bool
	Version           int32
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

// GiftCard balance is debited only through the CAS DebitGiftCard query and
// can never go negative.
type GiftCard struct {
	ID           uuid.UUID
	Code         string
	BalanceCents int64
	Currency     string
	Version      int32
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

// VerificationDiscount is the capped percentage discount granted to an
// identity-verified customer group. One active row per verification type.
type VerificationDiscount struct {
	ID                 uuid.UUID
	VerificationType   string
	DiscountPercentage decimal.Decimal
	MinOrderCents      int64
	MaxDiscountCents   int64
	IsActive           bool
	ValidFrom          pgtype.Date
	ValidTo            pgtype.Date
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// ExchangeRate is a display-currency rate row, refreshed out-of-band.
type ExchangeRate struct {
	Currency  string
	Rate      decimal.Decimal
	UpdatedAt pgtype.Timestamptz
}

// OrderPricingSnapshot is the immutable totals record written alongside
// order creation. Corrections reference it; they never mutate it.
type OrderPricingSnapshot struct {
	ID               uuid.UUID
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
	CreatedAt        pgtype.Timestamptz
}
