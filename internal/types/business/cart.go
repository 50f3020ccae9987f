package business

import (
	"github.com/google/uuid"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/constants"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
)

// CartLine is a client-submitted cart line. Only the product id and quantity
// feed computation; the declared price exists for tamper detection.
type CartLine struct {
	ProductID         uuid.UUID `json:"product_id"`
	Quantity          int32     `json:"quantity"`
	DeclaredUnitPrice *int64    `json:"declared_unit_price_cents,omitempty"`
}

// CartItem is a cart line resolved against the catalog. UnitPrice is the
// server-trusted price; immutable once a pricing snapshot is written.
type CartItem struct {
	ProductID            uuid.UUID
	UnitPrice            money.Money
	Quantity             int32
	ProductType          string
	CategoryIDs          []uuid.UUID
	ExcludedFromDiscount bool
}

// LineTotal returns unit price times quantity.
func (i CartItem) LineTotal() money.Money {
	return i.UnitPrice.MulQty(i.Quantity)
}

// DiscountEligible reports whether the line may receive any discount.
// Gift-card lines are never discounted regardless of their flag.
func (i CartItem) DiscountEligible() bool {
	if i.ExcludedFromDiscount {
		return false
	}
	return i.ProductType != constants.ProductTypeGiftCard
}

// InCategory reports whether the item belongs to the given category.
func (i CartItem) InCategory(categoryID uuid.UUID) bool {
	for _, id := range i.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
