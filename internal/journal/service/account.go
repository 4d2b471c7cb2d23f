package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/pkg/cryptox"
	"github.com/arcanajournal/arcana/pkg/idx"
)

var (
	ErrNotAuthorized        = errors.New("not authorized")
	ErrAccountNotFound      = errors.New("account not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidRegistration  = errors.New("invalid registration")
	ErrNoDeletionRequested  = errors.New("no deletion requested")
	ErrDeletionAlreadyAsked = errors.New("deletion already requested")
)

// AccountService owns registration and the user-facing half of the account
// lifecycle: requesting deletion, cancelling it, and admin restores. The
// timer-driven half lives in RetentionSweeper.
type AccountService struct {
	Store  store.Store
	Purger *AccountPurger

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

func (s *AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Register creates a new active account.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.Account{}, ErrInvalidRegistration
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}

	now := s.now()
	a := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrUsernameTaken
		}
		return domain.Account{}, err
	}
	return a, nil
}

// GetByID fetches an account.
func (s *AccountService) GetByID(ctx context.Context, accountID string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountNotFound
	}
	return a, err
}

// RequestDeletion soft-deletes the caller's account. The deletion anchor is
// set to now and both reminder flags are reset, so a re-request after a
// cancel starts a fresh reminder cycle.
func (s *AccountService) RequestDeletion(ctx context.Context, accountID string) (domain.Account, error) {
	a, err := s.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	if a.Deleted {
		return domain.Account{}, ErrDeletionAlreadyAsked
	}

	if err := s.Store.Accounts().MarkDeletionRequested(ctx, accountID, s.now()); err != nil {
		return domain.Account{}, err
	}
	return s.GetByID(ctx, accountID)
}

// CancelDeletion reverses the caller's own deletion request.
func (s *AccountService) CancelDeletion(ctx context.Context, accountID string) (domain.Account, error) {
	return s.clearDeletion(ctx, accountID)
}

// Restore reverses a deletion request on any account. Only admins may
// restore an account other than their own.
func (s *AccountService) Restore(ctx context.Context, callerID, targetID string) (domain.Account, error) {
	if callerID != targetID {
		caller, err := s.GetByID(ctx, callerID)
		if err != nil {
			return domain.Account{}, err
		}
		if !caller.Admin {
			return domain.Account{}, ErrNotAuthorized
		}
	}
	return s.clearDeletion(ctx, targetID)
}

func (s *AccountService) clearDeletion(ctx context.Context, accountID string) (domain.Account, error) {
	a, err := s.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	if !a.Deleted {
		return domain.Account{}, ErrNoDeletionRequested
	}

	if err := s.Store.Accounts().ClearDeletion(ctx, accountID, s.now()); err != nil {
		return domain.Account{}, err
	}
	return s.GetByID(ctx, accountID)
}

// HardDelete removes the caller's account and everything it owns
// immediately, without the retention grace period. The account row is only
// removed once the cascade completed.
func (s *AccountService) HardDelete(ctx context.Context, accountID string) error {
	if _, err := s.GetByID(ctx, accountID); err != nil {
		return err
	}
	if err := s.Purger.Purge(ctx, accountID); err != nil {
		return err
	}
	return s.Store.Accounts().DeleteAccount(ctx, accountID)
}
