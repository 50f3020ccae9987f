package db

import (
	"context"

	"github.com/google/uuid"
)

const getGiftCardByCode = `-- name: GetGiftCardByCode :one
SELECT id, code, balance_cents, currency, version, created_at, updated_at
FROM gift_cards
WHERE code = upper($1)
`

func (q *Queries) GetGiftCardByCode(ctx context.Context, code string) (GiftCard, error) {
	row := q.db.QueryRow(ctx, getGiftCardByCode, code)
	var i GiftCard
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.BalanceCents,
		&i.Currency,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const debitGiftCard = `-- name: DebitGiftCard :execrows
UPDATE gift_cards
SET balance_cents = balance_cents - $2,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $3 AND balance_cents >= $2
`

// DebitGiftCardParams carries the compare-and-swap inputs for a redemption
// debit. The balance guard keeps the card from ever going negative even if
// the version check were bypassed.
type DebitGiftCardParams struct {
	ID          uuid.UUID
	AmountCents int64
	Version     int32
}

func (q *Queries) DebitGiftCard(ctx context.Context, arg DebitGiftCardParams) (int64, error) {
	result, err := q.db.Exec(ctx, debitGiftCard, arg.ID, arg.AmountCents, arg.Version)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
