package business

import (
	"github.com/shopspring/decimal"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
)

// ShippingRate is the carrier rate already selected upstream by the
// rate-shopping component. The engine consumes it as-is.
type ShippingRate struct {
	Carrier     string      `json:"carrier"`
	ServiceCode string      `json:"service_code"`
	Rate        money.Money `json:"-"`
	RateCents   int64       `json:"rate_cents"`
}

// PricingRequest carries everything one pricing computation needs. It is
// ephemeral: built per call, never persisted. Declared values are only ever
// compared against recomputed ones, never used as computation inputs.
type PricingRequest struct {
	Lines                 []CartLine
	DeclaredSubtotalCents *int64
	Destination           Address
	PromoCode             string
	VerificationType      string
	GiftCardCodes         []string
	DonationAmount        money.Money
	Shipping              ShippingRate
	DisplayCurrency       string
}

// GiftCardApplication records how much of the final total one gift card
// covers. In preview it is a plan; in finalization the debit has happened.
type GiftCardApplication struct {
	Code             string      `json:"code"`
	Applied          money.Money `json:"-"`
	AppliedCents     int64       `json:"applied_cents"`
	RemainingBalance money.Money `json:"-"`
	RemainingCents   int64       `json:"remaining_balance_cents"`
}

// OrderTotals is the authoritative pricing breakdown in base currency.
// Persisted once as an immutable snapshot when the order is finalized.
type OrderTotals struct {
	Subtotal        money.Money     `json:"-"`
	DiscountAmount  money.Money     `json:"-"`
	DiscountSource  string          `json:"discount_source,omitempty"`
	ShippingCost    money.Money     `json:"-"`
	FreeShipping    bool            `json:"free_shipping"`
	TaxAmount       money.Money     `json:"-"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	NeedsTaxReview  bool            `json:"needs_tax_review"`
	DonationAmount  money.Money     `json:"-"`
	GiftCardApplied money.Money     `json:"-"`
	Total           money.Money     `json:"-"`
	Currency        string          `json:"currency"`
}

// Warning codes surfaced alongside a valid result for soft failures.
const (
	WarnInvalidPromoCode   = "invalid_promo_code"
	WarnGiftCardInvalid    = "gift_card_invalid"
	WarnGiftCardShortfall  = "gift_card_shortfall"
	WarnTaxFallback        = "tax_provider_unavailable"
	WarnDisplayUnavailable = "display_currency_unavailable"
)

// PricingWarning is a non-fatal validation message; checkout proceeds.
type PricingWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DisplayTotals mirrors OrderTotals in the requested display currency.
// Presentation only: payment capture always uses the base-currency totals.
type DisplayTotals struct {
	Currency     string              `json:"currency"`
	ExchangeRate decimal.Decimal     `json:"exchange_rate"`
	Subtotal     money.DisplayAmount `json:"subtotal"`
	Discount     money.DisplayAmount `json:"discount"`
	Shipping     money.DisplayAmount `json:"shipping"`
	Tax          money.DisplayAmount `json:"tax"`
	Donation     money.DisplayAmount `json:"donation"`
	Total        money.DisplayAmount `json:"total"`
}

// PricingResult is the full outcome of one compute: base-currency totals,
// the gift-card plan, soft-failure warnings, and optional display amounts.
type PricingResult struct {
	Totals    OrderTotals           `json:"totals"`
	GiftCards []GiftCardApplication `json:"gift_cards,omitempty"`
	Warnings  []PricingWarning      `json:"warnings,omitempty"`
	Display   *DisplayTotals        `json:"display,omitempty"`
	// RemainingTotal is what payment capture still needs to collect after
	// gift cards.
	RemainingTotal money.Money `json:"-"`
}
