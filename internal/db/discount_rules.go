package db

import (
	"context"

	"github.com/google/uuid"
)

const listActiveDiscountRules = `-- name: ListActiveDiscountRules :many
SELECT id, code, kind, value, target, target_id, target_product_type,
       cart_min_cents, cart_max_cents, valid_from, valid_to, status,
       auto_apply, once_only, compoundable, free_shipping, multiply_by_qty,
       version, created_at, updated_at
FROM discount_rules
WHERE status = 'active' AND auto_apply = true
ORDER BY code
`

func (q *Queries) ListActiveDiscountRules(ctx context.Context) ([]DiscountRule, error) {
	rows, err := q.db.Query(ctx, listActiveDiscountRules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DiscountRule
	for rows.Next() {
		var i DiscountRule
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Kind,
			&i.Value,
			&i.Target,
			&i.TargetID,
			&i.TargetProductType,
			&i.CartMinCents,
			&i.CartMaxCents,
			&i.ValidFrom,
			&i.ValidTo,
			&i.Status,
			&i.AutoApply,
			&i.OnceOnly,
			&i.Compoundable,
			&i.FreeShipping,
			&i.MultiplyByQty,
			&i.Version,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDiscountRuleByCode = `-- name: GetDiscountRuleByCode :one
SELECT id, code, kind, value, target, target_id, target_product_type,
       cart_min_cents, cart_max_cents, valid_from, valid_to, status,
       auto_apply, once_only, compoundable, free_shipping, multiply_by_qty,
       version, created_at, updated_at
FROM discount_rules
WHERE code = upper($1)
`

func (q *Queries) GetDiscountRuleByCode(ctx context.Context, code string) (DiscountRule, error) {
	row := q.db.QueryRow(ctx, getDiscountRuleByCode, code)
	var i DiscountRule
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Kind,
		&i.Value,
		&i.Target,
		&i.TargetID,
		&i.TargetProductType,
		&i.CartMinCents,
		&i.CartMaxCents,
		&i.ValidFrom,
		&i.ValidTo,
		&i.Status,
		&i.AutoApply,
		&i.OnceOnly,
		&i.Compoundable,
		&i.FreeShipping,
		&i.MultiplyByQty,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const consumeDiscountRule = `-- name: ConsumeDiscountRule :execrows
UPDATE discount_rules
SET status = 'used', version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2 AND status = 'active'
`

// ConsumeDiscountRuleParams carries the compare-and-swap inputs for marking
// a once-only rule as used.
type ConsumeDiscountRuleParams struct {
	ID      uuid.UUID
	Version int32
}

func (q *Queries) ConsumeDiscountRule(ctx context.Context, arg ConsumeDiscountRuleParams) (int64, error) {
	result, err := q.db.Exec(ctx, consumeDiscountRule, arg.ID, arg.Version)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
