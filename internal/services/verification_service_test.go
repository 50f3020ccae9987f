package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/constants"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/mocks"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/services"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

func militaryDiscount(pct int64, minOrderCents, maxDiscountCents int64) db.VerificationDiscount {
	return db.VerificationDiscount{
		ID:                 uuid.New(),
		VerificationType:   constants.VerificationTypeMilitary,
		DiscountPercentage: decimal.NewFromInt(pct),
		MinOrderCents:      minOrderCents,
		MaxDiscountCents:   maxDiscountCents,
		IsActive:           true,
		ValidFrom:          dateDaysFromNow(-30),
		ValidTo:            dateDaysFromNow(30),
	}
}

func TestVerificationDiscountResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	resolver := services.NewVerificationDiscountResolver(storeTZ)
	ctx := context.Background()

	tests := []struct {
		name          string
		subtotal      money.Money
		discount      db.VerificationDiscount
		lookupErr     error
		expectNil     bool
		expectedCents int64
	}{
		{
			name:          "ten percent of subtotal",
			subtotal:      money.FromCents(10000),
			discount:      militaryDiscount(10, 0, 100000),
			expectedCents: 1000,
		},
		{
			name:          "capped at max discount",
			subtotal:      money.FromCents(100000),
			discount:      militaryDiscount(10, 0, 2500),
			expectedCents: 2500,
		},
		{
			name:      "below minimum order",
			subtotal:  money.FromCents(4999),
			discount:  militaryDiscount(10, 5000, 100000),
			expectNil: true,
		},
		{
			name:          "minimum order boundary is inclusive",
			subtotal:      money.FromCents(5000),
			discount:      militaryDiscount(10, 5000, 100000),
			expectedCents: 500,
		},
		{
			name:      "no active record",
			subtotal:  money.FromCents(10000),
			lookupErr: pgx.ErrNoRows,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lookupErr != nil {
				mockQuerier.EXPECT().
					GetVerificationDiscount(ctx, constants.VerificationTypeMilitary).
					Return(db.VerificationDiscount{}, tt.lookupErr)
			} else {
				mockQuerier.EXPECT().
					GetVerificationDiscount(ctx, constants.VerificationTypeMilitary).
					Return(tt.discount, nil)
			}

			cand, err := resolver.Resolve(ctx, mockQuerier, constants.VerificationTypeMilitary, tt.subtotal)
			require.NoError(t, err)

			if tt.expectNil {
				assert.Nil(t, cand)
				return
			}
			require.NotNil(t, cand)
			assert.Equal(t, business.DiscountSourceVerification, cand.Source)
			assert.Equal(t, "verified:military", cand.Code)
			assert.Equal(t, tt.expectedCents, cand.Amount.Cents())
			assert.False(t, cand.Compoundable, "verification discounts never stack")
		})
	}
}

func TestVerificationDiscountResolver_Resolve_NoType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	resolver := services.NewVerificationDiscountResolver(storeTZ)

	cand, err := resolver.Resolve(context.Background(), mockQuerier, "", money.FromCents(10000))
	require.NoError(t, err)
	assert.Nil(t, cand)
}

func TestVerificationDiscountResolver_Resolve_ExpiredWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	resolver := services.NewVerificationDiscountResolver(storeTZ)
	ctx := context.Background()

	expired := militaryDiscount(10, 0, 100000)
	expired.ValidTo = dateDaysFromNow(-1)
	mockQuerier.EXPECT().
		GetVerificationDiscount(ctx, constants.VerificationTypeMilitary).
		Return(expired, nil)

	cand, err := resolver.Resolve(ctx, mockQuerier, constants.VerificationTypeMilitary, money.FromCents(10000))
	require.NoError(t, err)
	assert.Nil(t, cand)

	notYet := militaryDiscount(10, 0, 100000)
	notYet.ValidFrom = dateDaysFromNow(1)
	notYet.ValidTo = pgtype.Date{}
	mockQuerier.EXPECT().
		GetVerificationDiscount(ctx, constants.VerificationTypeMilitary).
		Return(notYet, nil)

	cand, err = resolver.Resolve(ctx, mockQuerier, constants.VerificationTypeMilitary, money.FromCents(10000))
	require.NoError(t, err)
	assert.Nil(t, cand)
}
