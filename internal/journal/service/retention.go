package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
)

// RetentionSweeper periodically walks soft-deleted accounts, sends the
// reminder notices and purges accounts whose grace period has passed. Run
// exactly one sweeper per deployment; it must live in a long-running
// process, not a per-request host.
type RetentionSweeper struct {
	Store      store.Store
	Dispatcher Dispatcher
	Purger     *AccountPurger
	Logger     *slog.Logger
	Policy     domain.RetentionPolicy

	// Interval between sweeps. Defaults to 24h.
	Interval time.Duration

	// DispatchTimeout bounds each notice delivery. A timeout counts as a
	// failed delivery and is retried on the next sweep.
	DispatchTimeout time.Duration

	// BaseURL is used to build cancel links in notices.
	BaseURL string

	// Now is the clock, overridable in tests.
	Now func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRetentionSweeper creates a sweeper with the given interval. If interval
// is 0 or negative, defaults to 24 hours.
func NewRetentionSweeper(
	st store.Store,
	dispatcher Dispatcher,
	purger *AccountPurger,
	logger *slog.Logger,
	policy domain.RetentionPolicy,
	interval time.Duration,
) *RetentionSweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	return &RetentionSweeper{
		Store:           st,
		Dispatcher:      dispatcher,
		Purger:          purger,
		Logger:          logger,
		Policy:          policy,
		Interval:        interval,
		DispatchTimeout: 10 * time.Second,
		stopCh:          make(chan struct{}),
		doneCh:          make(chan struct{}),
	}
}

func (s *RetentionSweeper) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Start begins the background worker. Non-blocking; call Stop() for a
// graceful shutdown.
func (s *RetentionSweeper) Start() {
	go s.run()
	s.Logger.Info("retention sweeper started",
		"interval", s.Interval,
		"retention", s.Policy.Retention,
	)
}

// Stop shuts down the background worker, blocking until any in-progress
// sweep has finished.
func (s *RetentionSweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("retention sweeper stopped")
}

func (s *RetentionSweeper) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep performs one full pass: first reminders, last-day reminders, then
// purges. Each pass isolates failures per account; a broken record or a
// down mail relay never aborts the rest of the sweep.
func (s *RetentionSweeper) Sweep(ctx context.Context) {
	now := s.now()
	s.Logger.Info("retention sweep starting", "now", now)

	notices := s.noticePass(ctx, now)
	finals := s.finalNoticePass(ctx, now)
	purged := s.purgePass(ctx, now)

	s.Logger.Info("retention sweep completed",
		"notices_sent", notices,
		"final_notices_sent", finals,
		"accounts_purged", purged,
	)
}

func (s *RetentionSweeper) noticePass(ctx context.Context, now time.Time) int {
	due, err := s.Store.Accounts().ListNoticeDue(ctx, s.Policy.NoticeCutoff(now))
	if err != nil {
		s.Logger.Error("failed to list accounts due a deletion notice", "error", err)
		return 0
	}

	var sent int
	for _, a := range due {
		if err := s.dispatch(ctx, a, NoticeInitial, now); err != nil {
			s.Logger.Error("deletion notice failed",
				"account_id", a.ID, "error", err)
			continue
		}
		// Flag only after a successful dispatch, and only if the account
		// is still soft-deleted: a cancel racing the sweep wins.
		ok, err := s.Store.Accounts().MarkNoticeSent(ctx, a.ID, now)
		if err != nil {
			s.Logger.Error("failed to record deletion notice",
				"account_id", a.ID, "error", err)
			continue
		}
		if ok {
			sent++
		}
	}
	return sent
}

func (s *RetentionSweeper) finalNoticePass(ctx context.Context, now time.Time) int {
	due, err := s.Store.Accounts().ListFinalNoticeDue(ctx, s.Policy.FinalNoticeCutoff(now))
	if err != nil {
		s.Logger.Error("failed to list accounts due a final notice", "error", err)
		return 0
	}

	var sent int
	for _, a := range due {
		if err := s.dispatch(ctx, a, NoticeFinal, now); err != nil {
			s.Logger.Error("final deletion notice failed",
				"account_id", a.ID, "error", err)
			continue
		}
		ok, err := s.Store.Accounts().MarkFinalNoticeSent(ctx, a.ID, now)
		if err != nil {
			s.Logger.Error("failed to record final notice",
				"account_id", a.ID, "error", err)
			continue
		}
		if ok {
			sent++
		}
	}
	return sent
}

func (s *RetentionSweeper) purgePass(ctx context.Context, now time.Time) int {
	due, err := s.Store.Accounts().ListPurgeDue(ctx, s.Policy.PurgeCutoff(now))
	if err != nil {
		s.Logger.Error("failed to list accounts due for purge", "error", err)
		return 0
	}

	var purged int
	for _, a := range due {
		// The account row goes only after the full cascade succeeded, so
		// a partial failure is resumed on the next sweep.
		if err := s.Purger.Purge(ctx, a.ID); err != nil {
			s.Logger.Error("account purge incomplete",
				"account_id", a.ID, "error", err)
			continue
		}
		if err := s.Store.Accounts().DeleteAccount(ctx, a.ID); err != nil {
			s.Logger.Error("failed to delete purged account",
				"account_id", a.ID, "error", err)
			continue
		}
		s.Logger.Info("account purged",
			"account_id", a.ID, "deleted_at", a.DeletedAt)
		purged++
	}
	return purged
}

func (s *RetentionSweeper) dispatch(ctx context.Context, a domain.Account, kind NoticeKind, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, s.dispatchTimeout())
	defer cancel()

	return s.Dispatcher.Send(ctx, Notice{
		Email:     a.Email,
		Username:  a.Username,
		Kind:      kind,
		PurgeDate: s.Policy.PurgeDate(a),
		DaysLeft:  s.Policy.DaysLeft(a, now),
		CancelURL: fmt.Sprintf("%s/v1/me/restore", s.BaseURL),
	})
}

func (s *RetentionSweeper) dispatchTimeout() time.Duration {
	if s.DispatchTimeout <= 0 {
		return 10 * time.Second
	}
	return s.DispatchTimeout
}
