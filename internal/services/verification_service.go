package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

// VerificationDiscountResolver turns an identity-verification context
// (military, responder, teacher, employee) into a capped percentage discount
// candidate.
type VerificationDiscountResolver struct {
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewVerificationDiscountResolver creates a resolver evaluating validity
// windows in the store timezone.
func NewVerificationDiscountResolver(loc *time.Location) *VerificationDiscountResolver {
	return &VerificationDiscountResolver{
		loc:    loc,
		logger: logger.Log,
		now:    time.Now,
	}
}

// Resolve returns the verification discount candidate for the given type, or
// nil when none applies. A missing or inactive record is not an error.
func (r *VerificationDiscountResolver) Resolve(
	ctx context.Context,
	q db.Querier,
	verificationType string,
	subtotal money.Money,
) (*business.DiscountCandidate, error) {
	if verificationType == "" {
		return nil, nil
	}

	vd, err := q.GetVerificationDiscount(ctx, verificationType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get verification discount: %v", ErrStoreUnavailable, err)
	}

	if !r.withinWindow(vd) {
		return nil, nil
	}
	if subtotal.Cents() < vd.MinOrderCents {
		return nil, nil
	}

	amount := subtotal.Percent(vd.DiscountPercentage).Min(money.FromCents(vd.MaxDiscountCents))
	if !amount.IsPositive() {
		return nil, nil
	}

	r.logger.Debug("Resolved verification discount",
		zap.String("verification_type", verificationType),
		zap.Int64("amount_cents", amount.Cents()))

	return &business.DiscountCandidate{
		Source: business.DiscountSourceVerification,
		Code:   "verified:" + verificationType,
		Amount: amount,
	}, nil
}

func (r *VerificationDiscountResolver) withinWindow(vd db.VerificationDiscount) bool {
	today := r.now().In(r.loc)
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, r.loc)

	if vd.ValidFrom.Valid {
		from := time.Date(vd.ValidFrom.Time.Year(), vd.ValidFrom.Time.Month(), vd.ValidFrom.Time.Day(), 0, 0, 0, 0, r.loc)
		if day.Before(from) {
			return false
		}
	}
	if vd.ValidTo.Valid {
		to := time.Date(vd.ValidTo.Time.Year(), vd.ValidTo.Time.Month(), vd.ValidTo.Time.Day(), 0, 0, 0, 0, r.loc)
		if day.After(to) {
			return false
		}
	}
	return true
}
