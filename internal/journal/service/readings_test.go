package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/stretchr/testify/require"
)

type readingFixture struct {
	readings *ReadingService
	tags     *TagService
	querents *QuerentService
	decks    *DeckService
	spreads  *SpreadService
	clock    *fixedClock
}

func newReadingFixture(t *testing.T) *readingFixture {
	t.Helper()
	st := newTestStore(t)
	clock := newClock(testStart)

	tags := &TagService{Store: st, Now: clock.Now}
	querents := &QuerentService{Store: st, Now: clock.Now}
	decks := &DeckService{Store: st, Now: clock.Now}
	spreads := &SpreadService{Store: st, Now: clock.Now}

	return &readingFixture{
		readings: &ReadingService{
			Store: st, Tags: tags, Querents: querents,
			Decks: decks, Spreads: spreads, Now: clock.Now,
		},
		tags:     tags,
		querents: querents,
		decks:    decks,
		spreads:  spreads,
		clock:    clock,
	}
}

func TestCreateReadingResolvesReferences(t *testing.T) {
	f := newReadingFixture(t)
	ctx := context.Background()

	deck, err := f.decks.Create(ctx, "owner-a", "Smith-Waite", "the classic", 78)
	require.NoError(t, err)
	spread, err := f.spreads.Create(ctx, "owner-a", "Celtic Cross", "", []string{
		"present", "challenge", "past", "future", "above",
		"below", "advice", "external", "hopes", "outcome",
	})
	require.NoError(t, err)

	readAt := testStart.Add(-2 * time.Hour)
	rd, tags, err := f.readings.Create(ctx, "owner-a", ReadingInput{
		Title:    "New moon reading",
		Question: "What should I focus on?",
		Querent:  SelfQuerentRef,
		DeckID:   deck.ID,
		SpreadID: spread.ID,
		Cards: []domain.CardDraw{
			{Position: "present", Card: "The Star", Reversed: false},
			{Position: "challenge", Card: "Five of Cups", Reversed: true},
		},
		Tags:   []string{"Focus", "New Moon"},
		ReadAt: readAt,
	})
	require.NoError(t, err)
	require.Equal(t, deck.ID, rd.DeckID)
	require.Equal(t, spread.ID, rd.SpreadID)
	require.Equal(t, readAt, rd.ReadAt)
	require.Len(t, rd.Cards, 2)

	// The querent alias resolved to the shared Self record.
	self, err := f.querents.ResolveSelf(ctx)
	require.NoError(t, err)
	require.Equal(t, self.ID, rd.QuerentID)

	require.Len(t, tags, 2)
	require.Equal(t, "focus", tags[0].NameLower)
	require.Equal(t, "new moon", tags[1].NameLower)

	got, gotTags, err := f.readings.Get(ctx, rd.ID, "owner-a")
	require.NoError(t, err)
	require.Equal(t, rd.ID, got.ID)
	require.Equal(t, rd.Cards, got.Cards)
	require.Len(t, gotTags, 2)
}

func TestCreateReadingTagCollidesWithGlobal(t *testing.T) {
	f := newReadingFixture(t)
	ctx := context.Background()

	global, err := f.tags.ResolveOrCreate(ctx, "Career", domain.GlobalOwner)
	require.NoError(t, err)

	// A reading tagged with a globally reserved name picks up the global
	// tag instead of failing.
	_, tags, err := f.readings.Create(ctx, "owner-a", ReadingInput{
		Title: "Job interview pull",
		Tags:  []string{"career"},
	})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, global.ID, tags[0].ID)
}

func TestReadingRejectsForeignReferences(t *testing.T) {
	f := newReadingFixture(t)
	ctx := context.Background()

	deck, err := f.decks.Create(ctx, "owner-b", "Thoth", "", 78)
	require.NoError(t, err)

	_, _, err = f.readings.Create(ctx, "owner-a", ReadingInput{
		Title:  "Borrowed deck",
		DeckID: deck.ID,
	})
	require.ErrorIs(t, err, ErrDeckNotFound)

	q, err := f.querents.Create(ctx, "Aunt Vera", "", "owner-b")
	require.NoError(t, err)
	_, _, err = f.readings.Create(ctx, "owner-a", ReadingInput{
		Title:   "Reading for a stranger",
		Querent: q.ID,
	})
	require.ErrorIs(t, err, ErrQuerentNotFound)
}

func TestReadingOwnerScoping(t *testing.T) {
	f := newReadingFixture(t)
	ctx := context.Background()

	rd, _, err := f.readings.Create(ctx, "owner-a", ReadingInput{Title: "Private"})
	require.NoError(t, err)

	_, _, err = f.readings.Get(ctx, rd.ID, "owner-b")
	require.ErrorIs(t, err, ErrReadingNotFound)
	require.ErrorIs(t, f.readings.Delete(ctx, rd.ID, "owner-b"), ErrReadingNotFound)

	mine, err := f.readings.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := f.readings.List(ctx, "owner-b")
	require.NoError(t, err)
	require.Empty(t, theirs)
}

func TestUpdateReadingRewritesTags(t *testing.T) {
	f := newReadingFixture(t)
	ctx := context.Background()

	rd, tags, err := f.readings.Create(ctx, "owner-a", ReadingInput{
		Title: "Draft",
		Tags:  []string{"Love", "Money"},
	})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	f.clock.Advance(time.Hour)
	updated, newTags, err := f.readings.Update(ctx, rd.ID, "owner-a", ReadingInput{
		Title: "Final",
		Tags:  []string{"Love"},
	})
	require.NoError(t, err)
	require.Equal(t, "Final", updated.Title)
	require.True(t, updated.UpdatedAt.After(rd.UpdatedAt))
	require.Len(t, newTags, 1)
	require.Equal(t, "love", newTags[0].NameLower)

	_, gotTags, err := f.readings.Get(ctx, rd.ID, "owner-a")
	require.NoError(t, err)
	require.Len(t, gotTags, 1)
}

func TestDeleteReading(t *testing.T) {
	f := newReadingFixture(t)
	ctx := context.Background()

	rd, _, err := f.readings.Create(ctx, "owner-a", ReadingInput{
		Title: "Fleeting",
		Tags:  []string{"Ephemera"},
	})
	require.NoError(t, err)

	require.NoError(t, f.readings.Delete(ctx, rd.ID, "owner-a"))
	_, _, err = f.readings.Get(ctx, rd.ID, "owner-a")
	require.ErrorIs(t, err, ErrReadingNotFound)

	// The tag itself survives; only the link is gone.
	tags, err := f.tags.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

// brokenTagLinkStore refuses every transactional tag-link rewrite.
type brokenTagLinkStore struct {
	store.Store
}

func (s *brokenTagLinkStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&brokenTagLinkTx{storeTx: tx})
	})
}

// storeTx aliases store.Tx so embedding it does not create a field named Tx,
// which would shadow the promoted Tx method from the embedded interface.
type storeTx = store.Tx

type brokenTagLinkTx struct {
	storeTx
}

func (t *brokenTagLinkTx) Readings() store.Readings {
	return &brokenTagLinks{Readings: t.storeTx.Readings()}
}

type brokenTagLinks struct {
	store.Readings
}

func (r *brokenTagLinks) ReplaceReadingTags(ctx context.Context, readingID string, tagIDs []string) error {
	return errors.New("reading_tags write refused")
}

func TestReadingWritesRollBackOnTagFailure(t *testing.T) {
	st := newTestStore(t)
	clock := newClock(testStart)

	tags := &TagService{Store: st, Now: clock.Now}
	querents := &QuerentService{Store: st, Now: clock.Now}
	decks := &DeckService{Store: st, Now: clock.Now}
	spreads := &SpreadService{Store: st, Now: clock.Now}
	broken := &ReadingService{
		Store: &brokenTagLinkStore{Store: st}, Tags: tags, Querents: querents,
		Decks: decks, Spreads: spreads, Now: clock.Now,
	}

	ctx := context.Background()
	_, _, err := broken.Create(ctx, "owner-a", ReadingInput{
		Title: "Morning pull",
		Tags:  []string{"focus"},
	})
	require.Error(t, err)

	// The reading rolled back with the failed link write; the resolved tag
	// survives for the retry.
	gone, err := st.Readings().ListReadingsByOwner(ctx, "owner-a")
	require.NoError(t, err)
	require.Empty(t, gone)

	_, err = st.Tags().GetTagByName(ctx, "focus", "owner-a")
	require.NoError(t, err)

	// An update failing the same way leaves the previous state intact.
	good := &ReadingService{
		Store: st, Tags: tags, Querents: querents,
		Decks: decks, Spreads: spreads, Now: clock.Now,
	}
	rd, _, err := good.Create(ctx, "owner-a", ReadingInput{
		Title: "Morning pull",
		Tags:  []string{"focus"},
	})
	require.NoError(t, err)

	_, _, err = broken.Update(ctx, rd.ID, "owner-a", ReadingInput{Title: "Edited"})
	require.Error(t, err)

	kept, err := st.Readings().GetReadingByID(ctx, rd.ID)
	require.NoError(t, err)
	require.Equal(t, "Morning pull", kept.Title)

	linked, err := st.Readings().ListReadingTags(ctx, rd.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
}
