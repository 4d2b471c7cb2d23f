package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/internal/journal/store/drivers/sqlite"
	"github.com/arcanajournal/arcana/pkg/cryptox"
	"github.com/arcanajournal/arcana/pkg/idx"
	"github.com/arcanajournal/arcana/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingDispatcher captures notices and can be told to fail, either
// wholesale or for one notice kind.
type recordingDispatcher struct {
	mu       sync.Mutex
	notices  []Notice
	fail     bool
	failKind NoticeKind
}

func (d *recordingDispatcher) Send(ctx context.Context, n Notice) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail || (d.failKind != "" && n.Kind == d.failKind) {
		return context.DeadlineExceeded
	}
	d.notices = append(d.notices, n)
	return nil
}

func (d *recordingDispatcher) sent() []Notice {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Notice(nil), d.notices...)
}

func (d *recordingDispatcher) setFail(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail = fail
}

func (d *recordingDispatcher) setFailKind(kind NoticeKind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failKind = kind
}

// fixedClock produces an adjustable test clock.
type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *fixedClock { return &fixedClock{t: t} }

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func mustRegister(t *testing.T, accounts *AccountService, username string) domain.Account {
	t.Helper()
	a, err := accounts.Register(context.Background(), username, username+"@example.com", "correct horse battery")
	require.NoError(t, err)
	return a
}

// mustRegisterAdmin seeds an admin account directly; there is no service
// call that grants admin rights.
func mustRegisterAdmin(t *testing.T, st store.Store, username string) domain.Account {
	t.Helper()
	hash, err := cryptox.HashPassword("correct horse battery")
	require.NoError(t, err)

	now := time.Now().UTC()
	a := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Admin:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Accounts().CreateAccount(context.Background(), a))
	return a
}

func newTestTokenService(t *testing.T, st store.Store, clock *fixedClock) *TokenService {
	t.Helper()
	keys, err := jwtx.NewEphemeralKeypair()
	require.NoError(t, err)
	return &TokenService{
		Store:  st,
		Signer: keys,
		Issuer: "arcana-test",
		Now:    clock.Now,
	}
}
