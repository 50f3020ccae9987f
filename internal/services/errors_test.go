package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/services"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want services.ErrorKind
	}{
		{"total mismatch", services.ErrTotalMismatch, services.KindRejection},
		{"concurrent modification", services.ErrConcurrentModification, services.KindRejection},
		{"store unavailable wrapped", fmt.Errorf("%w: get products: timeout", services.ErrStoreUnavailable), services.KindRejection},
		// A once-only code that lost the consume race is a business outcome,
		// not an internal fault.
		{"once-only code consumed", fmt.Errorf("%w: WELCOME15 already used", services.ErrInvalidPromoCode), services.KindRejection},
		{"empty cart", services.ErrEmptyCart, services.KindFatal},
		{"invalid quantity", services.ErrInvalidQuantity, services.KindFatal},
		{"unknown product wrapped", fmt.Errorf("%w: line 2", services.ErrUnknownProduct), services.KindFatal},
		{"invalid shipping", services.ErrInvalidShipping, services.KindFatal},
		{"anything else", errors.New("connection reset"), services.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.KindOf(tt.err))
		})
	}
}
