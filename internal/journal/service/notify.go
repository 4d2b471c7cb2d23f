package service

import (
	"context"
	"log/slog"
	"time"
)

// NoticeKind selects the reminder template.
type NoticeKind string

const (
	// NoticeInitial is the "your account will be purged in N days" mail.
	NoticeInitial NoticeKind = "initial"

	// NoticeFinal is the last-day reminder.
	NoticeFinal NoticeKind = "final"
)

// Notice is everything the dispatcher needs to render a reminder.
type Notice struct {
	Email     string
	Username  string
	Kind      NoticeKind
	PurgeDate time.Time
	DaysLeft  int
	CancelURL string
}

// Dispatcher delivers reminder notices. Implementations live outside this
// service; delivery is fire-and-forget and being called twice for the same
// reminder must be tolerated, since the sweep's flag-gating is the actual
// de-duplication.
type Dispatcher interface {
	Send(ctx context.Context, n Notice) error
}

// LogDispatcher writes notices to the log instead of delivering them. It is
// the default when no mail transport is configured.
type LogDispatcher struct {
	Logger *slog.Logger
}

func (d *LogDispatcher) Send(ctx context.Context, n Notice) error {
	d.Logger.Info("deletion notice",
		"kind", n.Kind,
		"username", n.Username,
		"email", n.Email,
		"purge_date", n.PurgeDate,
		"days_left", n.DaysLeft,
	)
	return nil
}
