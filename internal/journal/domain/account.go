package domain

import "time"

// Account is a registered user of the journal.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id encoded
	Admin        bool

	// Soft-deletion state. DeletedAt is the anchor for all retention
	// timing and is non-nil exactly when Deleted is true.
	Deleted   bool
	DeletedAt *time.Time

	// Reminder flags. NoticeSent can only be true while Deleted is true,
	// and FinalNoticeSent only while NoticeSent is true.
	NoticeSent      bool
	NoticeSentAt    *time.Time
	FinalNoticeSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountState is the retention lifecycle state, computed from the stored
// flags rather than persisted directly.
type AccountState int

const (
	// StateActive is a live account; no deletion has been requested.
	StateActive AccountState = iota

	// StateDeletionRequested is soft-deleted, no reminder sent yet.
	StateDeletionRequested

	// StateNoticed has received the upcoming-purge reminder.
	StateNoticed

	// StateFinalNoticed has received the last-day reminder.
	StateFinalNoticed
)

func (s AccountState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDeletionRequested:
		return "deletion_requested"
	case StateNoticed:
		return "noticed"
	case StateFinalNoticed:
		return "final_noticed"
	default:
		return "unknown"
	}
}

// State derives the lifecycle state from the account's flags.
func (a Account) State() AccountState {
	switch {
	case !a.Deleted:
		return StateActive
	case a.FinalNoticeSent:
		return StateFinalNoticed
	case a.NoticeSent:
		return StateNoticed
	default:
		return StateDeletionRequested
	}
}

// FlagsConsistent reports whether the stored flag combination is one the
// lifecycle can produce: final notice implies notice, notice implies
// deleted, and DeletedAt is set iff Deleted.
func (a Account) FlagsConsistent() bool {
	if a.FinalNoticeSent && !a.NoticeSent {
		return false
	}
	if a.NoticeSent && !a.Deleted {
		return false
	}
	return a.Deleted == (a.DeletedAt != nil)
}
