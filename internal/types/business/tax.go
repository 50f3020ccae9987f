package business

import (
	"github.com/shopspring/decimal"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
)

// TaxResult is the outcome of a tax calculation for one destination.
type TaxResult struct {
	Rate            decimal.Decimal `json:"rate"`
	TaxAmount       money.Money     `json:"tax_amount"`
	ShippingTaxable bool            `json:"shipping_taxable"`
	HasNexus        bool            `json:"has_nexus"`
	// NeedsReview marks orders priced with the zero-tax fallback after a
	// provider failure so back office can reconcile the tax later.
	NeedsReview bool `json:"needs_review"`
}
