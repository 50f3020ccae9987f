package services

import (
	"errors"
)

// Pricing error taxonomy. Rejection errors require the client to retry with
// corrected input; fatal errors mean the cart itself is malformed; soft
// failures never surface as errors - they become warnings on a valid result.
var (
	// Rejection errors
	ErrTotalMismatch          = errors.New("declared subtotal does not match recomputed subtotal")
	ErrConcurrentModification = errors.New("concurrent modification, retry the pricing request")
	ErrStoreUnavailable       = errors.New("store unavailable")

	// Fatal errors (malformed input, rejected before computation)
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("cart line quantity must be at least 1")
	ErrUnknownProduct  = errors.New("unknown or inactive product")
	ErrInvalidShipping = errors.New("shipping rate must not be negative")

	// Soft failures, used internally; surfaced to callers as warnings
	// during preview. A once-only code losing its consume race at finalize
	// is the exception: there it escalates to a rejection.
	ErrInvalidPromoCode    = errors.New("promo code is not valid for this cart")
	ErrGiftCardInvalid     = errors.New("gift card not found")
	ErrInsufficientBalance = errors.New("gift card balance insufficient")
)

// ErrorKind buckets an error into the taxonomy for transport mapping.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindRejection
	KindFatal
)

// KindOf classifies an error returned by the engine.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrTotalMismatch),
		errors.Is(err, ErrConcurrentModification),
		errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrInvalidPromoCode):
		return KindRejection
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrUnknownProduct),
		errors.Is(err, ErrInvalidShipping):
		return KindFatal
	default:
		return KindInternal
	}
}
