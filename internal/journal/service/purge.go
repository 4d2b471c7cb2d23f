package service

import (
	"context"
	"fmt"

	"github.com/arcanajournal/arcana/internal/journal/store"
)

// PartialPurgeError reports a cascade that stopped partway. The account row
// is left in place so a later sweep can resume; every per-collection delete
// is idempotent, so re-running completed steps is harmless.
type PartialPurgeError struct {
	AccountID  string
	Collection string
	Err        error
}

func (e *PartialPurgeError) Error() string {
	return fmt.Sprintf("purge of account %s failed at %s: %v", e.AccountID, e.Collection, e.Err)
}

func (e *PartialPurgeError) Unwrap() error { return e.Err }

// AccountPurger removes everything an account owns. It deliberately does
// not delete the account row itself: callers do that only after Purge
// returns nil, so a failed cascade can be retried.
type AccountPurger struct {
	Store store.Store
}

// Purge deletes the account's owned records, readings first so their tag
// links go with them, then the remaining collections. There is no
// multi-collection transaction; the contract is best-effort with resume on
// retry.
func (p *AccountPurger) Purge(ctx context.Context, accountID string) error {
	steps := []struct {
		collection string
		run        func(context.Context, string) error
	}{
		{"readings", p.Store.Readings().DeleteReadingsByOwner},
		{"decks", p.Store.Decks().DeleteDecksByOwner},
		{"spreads", p.Store.Spreads().DeleteSpreadsByOwner},
		{"querents", p.Store.Querents().DeleteQuerentsByOwner},
		{"tags", p.Store.Tags().DeleteTagsByOwner},
	}

	for _, step := range steps {
		if err := step.run(ctx, accountID); err != nil {
			return &PartialPurgeError{
				AccountID:  accountID,
				Collection: step.collection,
				Err:        err,
			}
		}
	}
	return nil
}
