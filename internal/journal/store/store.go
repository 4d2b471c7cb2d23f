package store

import (
	"context"
	"errors"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Accounts() Accounts
	Tags() Tags
	Querents() Querents
	Decks() Decks
	Spreads() Spreads
	Readings() Readings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). Returns ErrAlreadyExists on a username collision.
	CreateAccount(ctx context.Context, a domain.Account) error

	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByUsername is used during login.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// MarkDeletionRequested soft-deletes the account: sets the deleted
	// flag, anchors DeletedAt at the given time and clears both reminder
	// flags.
	MarkDeletionRequested(ctx context.Context, accountID string, at time.Time) error

	// ClearDeletion reverses a deletion request: clears the deleted flag,
	// DeletedAt and both reminder flags.
	ClearDeletion(ctx context.Context, accountID string, at time.Time) error

	// MarkNoticeSent records the first reminder conditionally: the update
	// applies only while the account is still soft-deleted and the flag
	// unset. Reports whether a row was updated.
	MarkNoticeSent(ctx context.Context, accountID string, at time.Time) (bool, error)

	// MarkFinalNoticeSent records the last-day reminder with the same
	// compare-and-set semantics as MarkNoticeSent, plus the requirement
	// that the first reminder was already recorded: the final flag never
	// leads the initial one.
	MarkFinalNoticeSent(ctx context.Context, accountID string, at time.Time) (bool, error)

	// ListNoticeDue returns soft-deleted accounts without a first
	// reminder whose DeletedAt is at or before cutoff.
	ListNoticeDue(ctx context.Context, cutoff time.Time) ([]domain.Account, error)

	// ListFinalNoticeDue returns soft-deleted accounts that received the
	// first reminder but not the last-day one, with DeletedAt at or
	// before cutoff.
	ListFinalNoticeDue(ctx context.Context, cutoff time.Time) ([]domain.Account, error)

	// ListPurgeDue returns soft-deleted accounts whose DeletedAt is at or
	// before cutoff, regardless of reminder state.
	ListPurgeDue(ctx context.Context, cutoff time.Time) ([]domain.Account, error)

	// DeleteAccount removes the account row. Owned records are removed
	// separately before this is called.
	DeleteAccount(ctx context.Context, accountID string) error
}

type Tags interface {
	// EnsureTag atomically inserts the tag unless a row with the same
	// (name_lower, owner_id) already exists, and returns the surviving
	// row either way. The unique index arbitrates concurrent callers.
	EnsureTag(ctx context.Context, t domain.Tag) (domain.Tag, bool, error)

	GetTagByID(ctx context.Context, id string) (domain.Tag, error)

	// GetTagByName looks up by the normalized name within one owner
	// namespace (domain.GlobalOwner for shared tags).
	GetTagByName(ctx context.Context, nameLower, ownerID string) (domain.Tag, error)

	// ListTagsForOwner returns the owner's tags plus all global tags.
	ListTagsForOwner(ctx context.Context, ownerID string) ([]domain.Tag, error)

	DeleteTag(ctx context.Context, id string) error

	// DeleteTagsByOwner removes every personal tag of an owner.
	DeleteTagsByOwner(ctx context.Context, ownerID string) error
}

type Querents interface {
	// EnsureQuerent has the same upsert semantics as EnsureTag.
	EnsureQuerent(ctx context.Context, q domain.Querent) (domain.Querent, bool, error)

	GetQuerentByID(ctx context.Context, id string) (domain.Querent, error)

	GetQuerentByName(ctx context.Context, nameLower, ownerID string) (domain.Querent, error)

	// ListQuerentsForOwner returns the owner's querents plus all global
	// querents.
	ListQuerentsForOwner(ctx context.Context, ownerID string) ([]domain.Querent, error)

	UpdateQuerent(ctx context.Context, q domain.Querent) error

	DeleteQuerent(ctx context.Context, id string) error

	DeleteQuerentsByOwner(ctx context.Context, ownerID string) error
}

type Decks interface {
	CreateDeck(ctx context.Context, d domain.Deck) error
	GetDeckByID(ctx context.Context, id string) (domain.Deck, error)
	ListDecksByOwner(ctx context.Context, ownerID string) ([]domain.Deck, error)
	UpdateDeck(ctx context.Context, d domain.Deck) error
	DeleteDeck(ctx context.Context, id string) error
	DeleteDecksByOwner(ctx context.Context, ownerID string) error
}

type Spreads interface {
	CreateSpread(ctx context.Context, s domain.Spread) error
	GetSpreadByID(ctx context.Context, id string) (domain.Spread, error)
	ListSpreadsByOwner(ctx context.Context, ownerID string) ([]domain.Spread, error)
	UpdateSpread(ctx context.Context, s domain.Spread) error
	DeleteSpread(ctx context.Context, id string) error
	DeleteSpreadsByOwner(ctx context.Context, ownerID string) error
}

type Readings interface {
	CreateReading(ctx context.Context, r domain.Reading) error
	GetReadingByID(ctx context.Context, id string) (domain.Reading, error)
	ListReadingsByOwner(ctx context.Context, ownerID string) ([]domain.Reading, error)
	UpdateReading(ctx context.Context, r domain.Reading) error
	DeleteReading(ctx context.Context, id string) error

	// DeleteReadingsByOwner removes the owner's readings and their tag
	// links.
	DeleteReadingsByOwner(ctx context.Context, ownerID string) error

	// ReplaceReadingTags rewrites the tag set of a reading.
	ReplaceReadingTags(ctx context.Context, readingID string, tagIDs []string) error

	// ListReadingTags returns the tags attached to a reading.
	ListReadingTags(ctx context.Context, readingID string) ([]domain.Tag, error)
}
