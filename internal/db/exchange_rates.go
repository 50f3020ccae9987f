package db

import (
	"context"
)

const getExchangeRate = `-- name: GetExchangeRate :one
SELECT currency, rate, updated_at
FROM exchange_rates
WHERE currency = upper($1)
`

func (q *Queries) GetExchangeRate(ctx context.Context, currency string) (ExchangeRate, error) {
	row := q.db.QueryRow(ctx, getExchangeRate, currency)
	var i ExchangeRate
	err := row.Scan(&i.Currency, &i.Rate, &i.UpdatedAt)
	return i, err
}
