package db

import (
	"context"
)

const getVerificationDiscount = `-- name: GetVerificationDiscount :one
SELECT id, verification_type, discount_percentage, min_order_cents,
       max_discount_cents, is_active, valid_from, valid_to,
       created_at, updated_at
FROM verification_discounts
WHERE verification_type = $1 AND is_active = true
`

func (q *Queries) GetVerificationDiscount(ctx context.Context, verificationType string) (VerificationDiscount, error) {
	row := q.db.QueryRow(ctx, getVerificationDiscount, verificationType)
	var i VerificationDiscount
	err := row.Scan(
		&i.ID,
		&i.VerificationType,
		&i.DiscountPercentage,
		&i.MinOrderCents,
		&i.MaxDiscountCents,
		&i.IsActive,
		&i.ValidFrom,
		&i.ValidTo,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
