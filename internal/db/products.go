package db

import (
	"context"

	"github.com/google/uuid"
)

const getProductsByIDs = `-- name: GetProductsByIDs :many
SELECT id, sku, name, product_type, unit_price_cents, category_ids,
       excluded_from_discount, active, created_at, updated_at
FROM products
WHERE id = ANY($1::uuid[]) AND active = true
`

func (q *Queries) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error) {
	rows, err := q.db.Query(ctx, getProductsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Sku,
			&i.Name,
			&i.ProductType,
			&i.UnitPriceCents,
			&i.CategoryIds,
			&i.ExcludedFromDiscount,
			&i.Active,
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
