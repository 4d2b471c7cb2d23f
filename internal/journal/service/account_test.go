package service

import (
	"context"
	"testing"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) (*AccountService, store.Store, *fixedClock) {
	t.Helper()
	st := newTestStore(t)
	clock := newClock(testStart)
	svc := &AccountService{
		Store:  st,
		Purger: &AccountPurger{Store: st},
		Now:    clock.Now,
	}
	return svc, st, clock
}

func TestRegister(t *testing.T) {
	svc, _, _ := newAccountService(t)
	ctx := context.Background()

	a, err := svc.Register(ctx, "rowan", "rowan@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.False(t, a.Deleted)
	require.Equal(t, domain.StateActive, a.State())
	require.NotEqual(t, "correct horse battery", a.PasswordHash)

	_, err = svc.Register(ctx, "rowan", "other@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(ctx, "  ", "blank@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestRequestAndCancelDeletion(t *testing.T) {
	svc, _, clock := newAccountService(t)
	ctx := context.Background()

	a := mustRegister(t, svc, "rowan")

	deleted, err := svc.RequestDeletion(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, deleted.Deleted)
	require.NotNil(t, deleted.DeletedAt)
	require.Equal(t, testStart, *deleted.DeletedAt)
	require.Equal(t, domain.StateDeletionRequested, deleted.State())

	// Requesting again while pending is rejected; the anchor is untouched.
	clock.Advance(24 * time.Hour)
	_, err = svc.RequestDeletion(ctx, a.ID)
	require.ErrorIs(t, err, ErrDeletionAlreadyAsked)

	restored, err := svc.CancelDeletion(ctx, a.ID)
	require.NoError(t, err)
	require.False(t, restored.Deleted)
	require.Nil(t, restored.DeletedAt)
	require.False(t, restored.NoticeSent)
	require.False(t, restored.FinalNoticeSent)

	// Nothing left to cancel.
	_, err = svc.CancelDeletion(ctx, a.ID)
	require.ErrorIs(t, err, ErrNoDeletionRequested)
}

func TestRestoreAuthorization(t *testing.T) {
	svc, st, _ := newAccountService(t)
	ctx := context.Background()

	target := mustRegister(t, svc, "rowan")
	bystander := mustRegister(t, svc, "morgan")
	admin := mustRegisterAdmin(t, st, "admin")

	_, err := svc.RequestDeletion(ctx, target.ID)
	require.NoError(t, err)

	// A non-admin cannot restore someone else.
	_, err = svc.Restore(ctx, bystander.ID, target.ID)
	require.ErrorIs(t, err, ErrNotAuthorized)

	// Self-restore works without admin rights.
	restored, err := svc.Restore(ctx, target.ID, target.ID)
	require.NoError(t, err)
	require.False(t, restored.Deleted)

	// Admin restore of another account.
	_, err = svc.RequestDeletion(ctx, target.ID)
	require.NoError(t, err)
	restored, err = svc.Restore(ctx, admin.ID, target.ID)
	require.NoError(t, err)
	require.False(t, restored.Deleted)
}

func TestHardDelete(t *testing.T) {
	svc, st, clock := newAccountService(t)
	ctx := context.Background()

	a := mustRegister(t, svc, "rowan")

	decks := &DeckService{Store: st, Now: clock.Now}
	_, err := decks.Create(ctx, a.ID, "Marseille", "", 78)
	require.NoError(t, err)

	require.NoError(t, svc.HardDelete(ctx, a.ID))

	_, err = svc.GetByID(ctx, a.ID)
	require.ErrorIs(t, err, ErrAccountNotFound)

	left, err := st.Decks().ListDecksByOwner(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, left)

	require.ErrorIs(t, svc.HardDelete(ctx, a.ID), ErrAccountNotFound)
}

func TestLogin(t *testing.T) {
	svc, st, clock := newAccountService(t)
	ctx := context.Background()

	a := mustRegister(t, svc, "rowan")

	tokens := newTestTokenService(t, st, clock)

	token, ttl, err := tokens.Login(ctx, "rowan", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Positive(t, ttl)

	_, _, err = tokens.Login(ctx, "rowan", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = tokens.Login(ctx, "nobody", "correct horse battery")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Soft-deleted accounts can still log in, so they can cancel.
	_, err = svc.RequestDeletion(ctx, a.ID)
	require.NoError(t, err)
	token, _, err = tokens.Login(ctx, "rowan", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}
