package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/money"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/types/business"
)

const giftCardMaxRetries = 3

// GiftCardLedger validates and debits gift-card balances. Debits go through
// a compare-and-swap on the card version so two concurrent checkouts can
// never spend the same balance twice.
type GiftCardLedger struct {
	logger *zap.Logger
}

// NewGiftCardLedger creates a new ledger.
func NewGiftCardLedger() *GiftCardLedger {
	return &GiftCardLedger{logger: logger.Log}
}

// Plan computes how much a card would cover without debiting it. Used by
// checkout preview.
func (l *GiftCardLedger) Plan(ctx context.Context, q db.Querier, code string, requested money.Money) (*business.GiftCardApplication, error) {
	card, err := l.lookup(ctx, q, code)
	if err != nil {
		return nil, err
	}
	applied := money.FromCents(card.BalanceCents).Min(requested)
	remaining := money.FromCents(card.BalanceCents).Sub(applied)
	return &business.GiftCardApplication{
		Code:             card.Code,
		Applied:          applied,
		AppliedCents:     applied.Cents(),
		RemainingBalance: remaining,
		RemainingCents:   remaining.Cents(),
	}, nil
}

// Redeem debits min(balance, requested) from the card atomically. A losing
// concurrent writer re-reads and retries a bounded number of times before
// surfacing ErrConcurrentModification.
func (l *GiftCardLedger) Redeem(ctx context.Context, q db.Querier, code string, requested money.Money) (*business.GiftCardApplication, error) {
	if !requested.IsPositive() {
		return nil, fmt.Errorf("requested redemption amount must be positive")
	}

	var result *business.GiftCardApplication

	operation := func() error {
		card, err := l.lookup(ctx, q, code)
		if err != nil {
			return backoff.Permanent(err)
		}
		if card.BalanceCents <= 0 {
			return backoff.Permanent(ErrInsufficientBalance)
		}

		applied := money.FromCents(card.BalanceCents).Min(requested)
		rows, err := q.DebitGiftCard(ctx, db.DebitGiftCardParams{
			ID:          card.ID,
			AmountCents: applied.Cents(),
			Version:     card.Version,
		})
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: debit gift card: %v", ErrStoreUnavailable, err))
		}
		if rows == 0 {
			// Lost the race; re-read and decide again rather than overwrite.
			l.logger.Debug("Gift card debit lost compare-and-swap, retrying",
				zap.String("code", card.Code))
			return ErrConcurrentModification
		}

		remaining := money.FromCents(card.BalanceCents).Sub(applied)
		result = &business.GiftCardApplication{
			Code:             card.Code,
			Applied:          applied,
			AppliedCents:     applied.Cents(),
			RemainingBalance: remaining,
			RemainingCents:   remaining.Cents(),
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), giftCardMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return result, nil
}

func (l *GiftCardLedger) lookup(ctx context.Context, q db.Querier, code string) (db.GiftCard, error) {
	card, err := q.GetGiftCardByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.GiftCard{}, ErrGiftCardInvalid
		}
		return db.GiftCard{}, fmt.Errorf("%w: get gift card: %v", ErrStoreUnavailable, err)
	}
	if card.Currency != money.BaseCurrency {
		return db.GiftCard{}, ErrGiftCardInvalid
	}
	return card, nil
}
