package service

import (
	"context"
	"sync"
	"testing"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/stretchr/testify/require"
)

func TestResolveSelfConcurrent(t *testing.T) {
	st := newTestStore(t)
	svc := &QuerentService{Store: st}
	ctx := context.Background()

	const workers = 20
	ids := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q, err := svc.ResolveSelf(ctx)
			ids[i], errs[i] = q.ID, err
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
		require.Equal(t, ids[0], ids[i], "worker %d got a different Self", i)
	}

	self, err := st.Querents().GetQuerentByName(ctx, "self", domain.GlobalOwner)
	require.NoError(t, err)
	require.True(t, self.Global())
	require.Equal(t, ids[0], self.ID)
}

func TestQuerentNameMayShadowGlobal(t *testing.T) {
	st := newTestStore(t)
	svc := &QuerentService{Store: st}
	ctx := context.Background()

	self, err := svc.ResolveSelf(ctx)
	require.NoError(t, err)

	// Unlike tags, a personal querent may reuse a global name.
	personal, err := svc.Create(ctx, "Self", "my own notes on me", "owner-a")
	require.NoError(t, err)
	require.NotEqual(t, self.ID, personal.ID)
	require.False(t, personal.Global())

	// Creating it again resolves to the same personal row.
	again, err := svc.Create(ctx, "self", "", "owner-a")
	require.NoError(t, err)
	require.Equal(t, personal.ID, again.ID)
}

func TestQuerentVisibility(t *testing.T) {
	st := newTestStore(t)
	svc := &QuerentService{Store: st}
	ctx := context.Background()

	self, err := svc.ResolveSelf(ctx)
	require.NoError(t, err)
	mine, err := svc.Create(ctx, "Aunt Vera", "", "owner-a")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Neighbour", "", "owner-b")
	require.NoError(t, err)

	// Global querents are readable by anyone; foreign ones are not.
	got, err := svc.Get(ctx, self.ID, "owner-a")
	require.NoError(t, err)
	require.True(t, got.Global())

	_, err = svc.Get(ctx, mine.ID, "owner-b")
	require.ErrorIs(t, err, ErrQuerentNotFound)

	list, err := svc.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestGlobalQuerentLocked(t *testing.T) {
	st := newTestStore(t)
	svc := &QuerentService{Store: st}
	ctx := context.Background()

	self, err := svc.ResolveSelf(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, self.ID, "owner-a", "Myself", "")
	require.ErrorIs(t, err, ErrGlobalQuerentLocked)
	require.ErrorIs(t, svc.Delete(ctx, self.ID, "owner-a"), ErrGlobalQuerentLocked)
}

func TestUpdateAndDeleteQuerent(t *testing.T) {
	st := newTestStore(t)
	svc := &QuerentService{Store: st}
	ctx := context.Background()

	q, err := svc.Create(ctx, "Aunt Vera", "", "owner-a")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, q.ID, "owner-a", "Auntie V", "prefers the Marseille")
	require.NoError(t, err)
	require.Equal(t, "Auntie V", updated.Name)
	require.Equal(t, "auntie v", updated.NameLower)

	_, err = svc.Update(ctx, q.ID, "owner-b", "Stolen", "")
	require.ErrorIs(t, err, ErrQuerentNotFound)

	require.NoError(t, svc.Delete(ctx, q.ID, "owner-a"))
	_, err = svc.Get(ctx, q.ID, "owner-a")
	require.ErrorIs(t, err, ErrQuerentNotFound)
}
