package service

import (
	"context"
	"sync"
	"testing"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreateReturnsSameRow(t *testing.T) {
	st := newTestStore(t)
	svc := &TagService{Store: st}
	ctx := context.Background()

	first, err := svc.ResolveOrCreate(ctx, "Love", "owner-a")
	require.NoError(t, err)
	require.Equal(t, "Love", first.Name)
	require.Equal(t, "love", first.NameLower)

	// Same name in a different casing resolves to the existing row.
	second, err := svc.ResolveOrCreate(ctx, "LOVE", "owner-a")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	// Another owner gets their own row.
	other, err := svc.ResolveOrCreate(ctx, "Love", "owner-b")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, other.ID)
}

func TestResolveOrCreateConcurrent(t *testing.T) {
	st := newTestStore(t)
	svc := &TagService{Store: st}
	ctx := context.Background()

	const workers = 20
	ids := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag, err := svc.ResolveOrCreate(ctx, "Love", "owner-a")
			ids[i], errs[i] = tag.ID, err
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
		require.Equal(t, ids[0], ids[i], "worker %d resolved a different row", i)
	}

	tags, err := svc.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestResolveOrCreateGlobalCollision(t *testing.T) {
	st := newTestStore(t)
	svc := &TagService{Store: st}
	ctx := context.Background()

	global, err := svc.ResolveOrCreate(ctx, "Career", domain.GlobalOwner)
	require.NoError(t, err)
	require.True(t, global.Global())

	_, err = svc.ResolveOrCreate(ctx, "career", "owner-a")
	require.ErrorIs(t, err, ErrTagReservedGlobally)

	// The rejection must not leave a personal row behind.
	tags, err := svc.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, global.ID, tags[0].ID)
}

func TestResolveOrCreateRejectsBlankName(t *testing.T) {
	st := newTestStore(t)
	svc := &TagService{Store: st}

	_, err := svc.ResolveOrCreate(context.Background(), "   ", "owner-a")
	require.ErrorIs(t, err, ErrInvalidTagName)
}

func TestListIncludesGlobalTags(t *testing.T) {
	st := newTestStore(t)
	svc := &TagService{Store: st}
	ctx := context.Background()

	_, err := svc.ResolveOrCreate(ctx, "Major Arcana", domain.GlobalOwner)
	require.NoError(t, err)
	_, err = svc.ResolveOrCreate(ctx, "Love", "owner-a")
	require.NoError(t, err)
	_, err = svc.ResolveOrCreate(ctx, "Money", "owner-b")
	require.NoError(t, err)

	tags, err := svc.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, tags, 2)

	names := []string{tags[0].NameLower, tags[1].NameLower}
	require.ElementsMatch(t, []string{"major arcana", "love"}, names)
}

func TestDeleteTagAuthorization(t *testing.T) {
	st := newTestStore(t)
	svc := &TagService{Store: st}
	ctx := context.Background()

	personal, err := svc.ResolveOrCreate(ctx, "Love", "owner-a")
	require.NoError(t, err)
	global, err := svc.ResolveOrCreate(ctx, "Career", domain.GlobalOwner)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, personal.ID, "owner-b", false), ErrTagDeleteNotAllowed)
	require.ErrorIs(t, svc.Delete(ctx, global.ID, "owner-a", false), ErrGlobalTagAdminOnly)

	require.NoError(t, svc.Delete(ctx, personal.ID, "owner-a", false))
	require.NoError(t, svc.Delete(ctx, global.ID, "owner-a", true))

	require.ErrorIs(t, svc.Delete(ctx, personal.ID, "owner-a", false), ErrTagNotFound)
}
