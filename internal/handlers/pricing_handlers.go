package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/services"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

// PricingHandler exposes the pricing engine over HTTP: preview for checkout
// display and finalize for the capture path.
type PricingHandler struct {
	engine *services.PricingEngine
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(engine *services.PricingEngine) *PricingHandler {
	return &PricingHandler{engine: engine}
}

// PricingRequestBody is the wire form of a pricing request. All amounts are
// integer cents; declared values exist only for tamper validation.
type PricingRequestBody struct {
	Lines                 []business.CartLine `json:"lines" binding:"required"`
	DeclaredSubtotalCents *int64              `json:"declared_subtotal_cents,omitempty"`
	Destination           business.Address    `json:"destination"`
	PromoCode             string              `json:"promo_code,omitempty"`
	VerificationType      string              `json:"verification_type,omitempty"`
	GiftCardCodes         []string            `json:"gift_card_codes,omitempty"`
	DonationCents         int64               `json:"donation_cents,omitempty"`
	ShippingCarrier       string              `json:"shipping_carrier,omitempty"`
	ShippingServiceCode   string              `json:"shipping_service_code,omitempty"`
	ShippingRateCents     int64               `json:"shipping_rate_cents,omitempty"`
	DisplayCurrency       string              `json:"display_currency,omitempty"`
}

// FinalizeRequestBody adds the order the pricing snapshot attaches to.
type FinalizeRequestBody struct {
	PricingRequestBody
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

// PricingResponse is the wire form of a pricing result.
type PricingResponse struct {
	SubtotalCents       int64                          `json:"subtotal_cents"`
	DiscountCents       int64                          `json:"discount_cents"`
	DiscountSource      string                         `json:"discount_source,omitempty"`
	ShippingCents       int64                          `json:"shipping_cents"`
	FreeShipping        bool                           `json:"free_shipping"`
	TaxCents            int64                          `json:"tax_cents"`
	TaxRate             decimal.Decimal                `json:"tax_rate"`
	NeedsTaxReview      bool                           `json:"needs_tax_review"`
	DonationCents       int64                          `json:"donation_cents"`
	GiftCardCents       int64                          `json:"gift_card_cents"`
	TotalCents          int64                          `json:"total_cents"`
	RemainingTotalCents int64                          `json:"remaining_total_cents"`
	Currency            string                         `json:"currency"`
	GiftCards           []business.GiftCardApplication `json:"gift_cards,omitempty"`
	Warnings            []business.PricingWarning      `json:"warnings,omitempty"`
	Display             *business.DisplayTotals        `json:"display,omitempty"`
}

// PreviewPricing computes totals for checkout display without touching any
// shared state.
func (h *PricingHandler) PreviewPricing(c *gin.Context) {
	var body PricingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.engine.Compute(c.Request.Context(), body.toRequest())
	if err != nil {
		h.sendPricingError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toResponse(result))
}

// FinalizePricing reprices authoritatively, consumes limited-use discounts
// and gift-card balances, and writes the order's immutable totals snapshot.
func (h *PricingHandler) FinalizePricing(c *gin.Context) {
	var body FinalizeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.engine.Finalize(c.Request.Context(), body.toRequest(), body.OrderID)
	if err != nil {
		h.sendPricingError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toResponse(result))
}

// sendPricingError maps the engine's error taxonomy onto HTTP statuses. Only
// the taxonomy kind and a safe message cross the boundary.
func (h *PricingHandler) sendPricingError(c *gin.Context, err error) {
	switch {
	case services.KindOf(err) == services.KindFatal:
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrTotalMismatch):
		sendError(c, http.StatusUnprocessableEntity, "cart totals changed, please refresh and retry", err)
	case errors.Is(err, services.ErrConcurrentModification):
		sendError(c, http.StatusConflict, "pricing conflicted with another checkout, please retry", err)
	case errors.Is(err, services.ErrStoreUnavailable):
		sendError(c, http.StatusServiceUnavailable, "pricing temporarily unavailable, please retry", err)
	case errors.Is(err, services.ErrInvalidPromoCode):
		sendError(c, http.StatusUnprocessableEntity, "promo code is no longer available", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (b PricingRequestBody) toRequest() business.PricingRequest {
	return business.PricingRequest{
		Lines:                 b.Lines,
		DeclaredSubtotalCents: b.DeclaredSubtotalCents,
		Destination:           b.Destination,
		PromoCode:             b.PromoCode,
		VerificationType:      b.VerificationType,
		GiftCardCodes:         b.GiftCardCodes,
		DonationAmount:        money.FromCents(b.DonationCents),
		Shipping: business.ShippingRate{
			Carrier:     b.ShippingCarrier,
			ServiceCode: b.ShippingServiceCode,
			Rate:        money.FromCents(b.ShippingRateCents),
			RateCents:   b.ShippingRateCents,
		},
		DisplayCurrency: b.DisplayCurrency,
	}
}

func toResponse(result *business.PricingResult) PricingResponse {
	return PricingResponse{
		SubtotalCents:       result.Totals.Subtotal.Cents(),
		DiscountCents:       result.Totals.DiscountAmount.Cents(),
		DiscountSource:      result.Totals.DiscountSource,
		ShippingCents:       result.Totals.ShippingCost.Cents(),
		FreeShipping:        result.Totals.FreeShipping,
		TaxCents:            result.Totals.TaxAmount.Cents(),
		TaxRate:             result.Totals.TaxRate,
		NeedsTaxReview:      result.Totals.NeedsTaxReview,
		DonationCents:       result.Totals.DonationAmount.Cents(),
		GiftCardCents:       result.Totals.GiftCardApplied.Cents(),
		TotalCents:          result.Totals.Total.Cents(),
		RemainingTotalCents: result.RemainingTotal.Cents(),
		Currency:            result.Totals.Currency,
		GiftCards:           result.GiftCards,
		Warnings:            result.Warnings,
		Display:             result.Display,
	}
}
