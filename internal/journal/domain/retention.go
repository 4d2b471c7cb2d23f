package domain

import (
	"fmt"
	"time"
)

// RetentionPolicy describes the grace period between a deletion request and
// the permanent purge, and the reminder windows inside it.
type RetentionPolicy struct {
	// Retention is how long a soft-deleted account is kept before purge.
	Retention time.Duration

	// NoticeWindow is how long before the purge date the first reminder
	// goes out.
	NoticeWindow time.Duration

	// FinalNoticeWindow is how long before the purge date the last
	// reminder goes out.
	FinalNoticeWindow time.Duration
}

// DefaultRetentionPolicy keeps accounts for 30 days, reminding at 7 days and
// again 1 day before the purge.
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{
		Retention:         30 * 24 * time.Hour,
		NoticeWindow:      7 * 24 * time.Hour,
		FinalNoticeWindow: 24 * time.Hour,
	}
}

// Validate checks the operator ordering requirement
// FinalNoticeWindow <= NoticeWindow <= Retention. Violating it does not
// break the sweep, but accounts may be purged before or right as they are
// reminded.
func (p RetentionPolicy) Validate() error {
	if p.Retention <= 0 {
		return fmt.Errorf("retention must be positive, got %s", p.Retention)
	}
	if p.FinalNoticeWindow > p.NoticeWindow {
		return fmt.Errorf("final notice window %s exceeds notice window %s", p.FinalNoticeWindow, p.NoticeWindow)
	}
	if p.NoticeWindow > p.Retention {
		return fmt.Errorf("notice window %s exceeds retention %s", p.NoticeWindow, p.Retention)
	}
	return nil
}

// PurgeDate returns when the account becomes eligible for permanent
// removal, or the zero time for accounts that are not soft-deleted.
func (p RetentionPolicy) PurgeDate(a Account) time.Time {
	if a.DeletedAt == nil {
		return time.Time{}
	}
	return a.DeletedAt.Add(p.Retention)
}

// NoticeDue reports whether the first reminder should be sent at now.
func (p RetentionPolicy) NoticeDue(a Account, now time.Time) bool {
	if a.State() != StateDeletionRequested {
		return false
	}
	return p.PurgeDate(a).Sub(now) <= p.NoticeWindow
}

// FinalNoticeDue reports whether the last reminder should be sent at now.
// It does not require the first reminder to have gone out already; the
// sweep's pass ordering takes care of that in the normal case.
func (p RetentionPolicy) FinalNoticeDue(a Account, now time.Time) bool {
	if !a.Deleted || a.FinalNoticeSent {
		return false
	}
	return p.PurgeDate(a).Sub(now) <= p.FinalNoticeWindow
}

// PurgeDue reports whether the account has passed its retention cutoff.
// Reminder state is deliberately not consulted: an account whose reminder
// windows were never reached is still purged once the cutoff passes, and a
// failing dispatcher never blocks the purge.
func (p RetentionPolicy) PurgeDue(a Account, now time.Time) bool {
	if !a.Deleted || a.DeletedAt == nil {
		return false
	}
	return now.Sub(*a.DeletedAt) >= p.Retention
}

// NoticeCutoff returns the DeletedAt threshold at which the first reminder
// becomes due: every soft-deleted account with DeletedAt at or before the
// cutoff should have been reminded.
func (p RetentionPolicy) NoticeCutoff(now time.Time) time.Time {
	return now.Add(p.NoticeWindow - p.Retention)
}

// FinalNoticeCutoff is NoticeCutoff for the last-day reminder.
func (p RetentionPolicy) FinalNoticeCutoff(now time.Time) time.Time {
	return now.Add(p.FinalNoticeWindow - p.Retention)
}

// PurgeCutoff returns the DeletedAt threshold past which accounts are
// purged.
func (p RetentionPolicy) PurgeCutoff(now time.Time) time.Time {
	return now.Add(-p.Retention)
}

// DaysLeft returns the whole days remaining until the purge date, never
// negative. Used for reminder message content.
func (p RetentionPolicy) DaysLeft(a Account, now time.Time) int {
	if a.DeletedAt == nil {
		return 0
	}
	left := p.PurgeDate(a).Sub(now)
	if left < 0 {
		return 0
	}
	return int(left / (24 * time.Hour))
}
