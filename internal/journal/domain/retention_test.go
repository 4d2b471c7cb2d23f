package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func deletedAccount(deletedAt time.Time) Account {
	return Account{
		ID:        "acct-1",
		Deleted:   true,
		DeletedAt: &deletedAt,
	}
}

func TestStateDerivation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("active", func(t *testing.T) {
		require.Equal(t, StateActive, Account{}.State())
	})

	t.Run("deletion requested", func(t *testing.T) {
		a := deletedAccount(now)
		require.Equal(t, StateDeletionRequested, a.State())
	})

	t.Run("noticed", func(t *testing.T) {
		a := deletedAccount(now)
		a.NoticeSent = true
		require.Equal(t, StateNoticed, a.State())
	})

	t.Run("final noticed", func(t *testing.T) {
		a := deletedAccount(now)
		a.NoticeSent = true
		a.FinalNoticeSent = true
		require.Equal(t, StateFinalNoticed, a.State())
	})
}

func TestFlagsConsistent(t *testing.T) {
	now := time.Now().UTC()

	require.True(t, Account{}.FlagsConsistent())

	a := deletedAccount(now)
	require.True(t, a.FlagsConsistent())

	// Final notice without first notice is unreachable.
	a = deletedAccount(now)
	a.FinalNoticeSent = true
	require.False(t, a.FlagsConsistent())

	// Notice flag on a live account is unreachable.
	require.False(t, Account{NoticeSent: true}.FlagsConsistent())

	// DeletedAt without the flag is unreachable.
	require.False(t, Account{DeletedAt: &now}.FlagsConsistent())
}

func TestNoticeDue(t *testing.T) {
	p := DefaultRetentionPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("due inside window", func(t *testing.T) {
		// Deleted 24 days ago: purge in 6 days, inside the 7 day window.
		a := deletedAccount(now.Add(-24 * 24 * time.Hour))
		require.True(t, p.NoticeDue(a, now))
	})

	t.Run("not due outside window", func(t *testing.T) {
		// Deleted 2 days ago: purge in 28 days.
		a := deletedAccount(now.Add(-2 * 24 * time.Hour))
		require.False(t, p.NoticeDue(a, now))
	})

	t.Run("not due once sent", func(t *testing.T) {
		a := deletedAccount(now.Add(-24 * 24 * time.Hour))
		a.NoticeSent = true
		require.False(t, p.NoticeDue(a, now))
	})

	t.Run("never due for active accounts", func(t *testing.T) {
		require.False(t, p.NoticeDue(Account{}, now))
	})
}

func TestFinalNoticeDue(t *testing.T) {
	p := DefaultRetentionPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Deleted 29.5 days ago: purge in ~12h, inside the 1 day window.
	a := deletedAccount(now.Add(-708 * time.Hour))
	a.NoticeSent = true
	require.True(t, p.FinalNoticeDue(a, now))

	a.FinalNoticeSent = true
	require.False(t, p.FinalNoticeDue(a, now))

	// Deleted 24 days ago: purge in 6 days, too early.
	b := deletedAccount(now.Add(-24 * 24 * time.Hour))
	b.NoticeSent = true
	require.False(t, p.FinalNoticeDue(b, now))
}

func TestPurgeDue(t *testing.T) {
	p := DefaultRetentionPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("due past retention", func(t *testing.T) {
		a := deletedAccount(now.Add(-31 * 24 * time.Hour))
		require.True(t, p.PurgeDue(a, now))
	})

	t.Run("due exactly at retention", func(t *testing.T) {
		a := deletedAccount(now.Add(-30 * 24 * time.Hour))
		require.True(t, p.PurgeDue(a, now))
	})

	t.Run("not due before retention", func(t *testing.T) {
		a := deletedAccount(now.Add(-29 * 24 * time.Hour))
		require.False(t, p.PurgeDue(a, now))
	})

	t.Run("purge does not require notices", func(t *testing.T) {
		a := deletedAccount(now.Add(-31 * 24 * time.Hour))
		require.False(t, a.NoticeSent)
		require.True(t, p.PurgeDue(a, now))
	})
}

func TestCutoffsMatchDueChecks(t *testing.T) {
	p := DefaultRetentionPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// An account deleted exactly at the notice cutoff is due.
	a := deletedAccount(p.NoticeCutoff(now))
	require.True(t, p.NoticeDue(a, now))

	// One second later it is not.
	b := deletedAccount(p.NoticeCutoff(now).Add(time.Second))
	require.False(t, p.NoticeDue(b, now))

	c := deletedAccount(p.PurgeCutoff(now))
	require.True(t, p.PurgeDue(c, now))
}

func TestPolicyValidate(t *testing.T) {
	require.NoError(t, DefaultRetentionPolicy().Validate())

	bad := RetentionPolicy{Retention: time.Hour, NoticeWindow: 2 * time.Hour, FinalNoticeWindow: time.Minute}
	require.Error(t, bad.Validate())

	bad = RetentionPolicy{Retention: 3 * time.Hour, NoticeWindow: time.Hour, FinalNoticeWindow: 2 * time.Hour}
	require.Error(t, bad.Validate())

	require.Error(t, RetentionPolicy{}.Validate())
}

func TestDaysLeft(t *testing.T) {
	p := DefaultRetentionPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := deletedAccount(now.Add(-23 * 24 * time.Hour))
	require.Equal(t, 7, p.DaysLeft(a, now))

	b := deletedAccount(now.Add(-40 * 24 * time.Hour))
	require.Equal(t, 0, p.DaysLeft(b, now))
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "love", NormalizeName("  Love "))
	require.Equal(t, "self", NormalizeName("SELF"))
}
