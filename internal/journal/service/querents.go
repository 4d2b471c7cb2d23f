package service

import (
	"context"
	"errors"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/pkg/idx"
)

var (
	ErrQuerentNotFound     = errors.New("querent not found")
	ErrInvalidQuerentName  = errors.New("invalid querent name")
	ErrQuerentNotOwned     = errors.New("querent is not owned by the caller")
	ErrGlobalQuerentLocked = errors.New("global querents cannot be modified")
)

// QuerentService manages the people readings are performed for, including
// the shared "Self" querent that every account references.
type QuerentService struct {
	Store store.Store

	Now func() time.Time
}

func (s *QuerentService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ResolveSelf returns the single shared "Self" querent, creating it on the
// first call ever. Concurrent first calls are resolved by the unique index:
// all of them return the one surviving row.
func (s *QuerentService) ResolveSelf(ctx context.Context) (domain.Querent, error) {
	now := s.now()
	q, _, err := s.Store.Querents().EnsureQuerent(ctx, domain.Querent{
		ID:        idx.New().String(),
		Name:      domain.SelfQuerentName,
		NameLower: domain.NormalizeName(domain.SelfQuerentName),
		OwnerID:   domain.GlobalOwner,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return q, err
}

// Create adds a personal querent. Creating a querent whose name matches an
// existing one in the same namespace returns the existing record; unlike
// tags, a personal querent may share a name with a global one.
func (s *QuerentService) Create(ctx context.Context, name, description, ownerID string) (domain.Querent, error) {
	nameLower := domain.NormalizeName(name)
	if nameLower == "" {
		return domain.Querent{}, ErrInvalidQuerentName
	}

	now := s.now()
	q, _, err := s.Store.Querents().EnsureQuerent(ctx, domain.Querent{
		ID:          idx.New().String(),
		Name:        name,
		NameLower:   nameLower,
		OwnerID:     ownerID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	return q, err
}

// Get returns a querent visible to the caller: their own or a global one.
func (s *QuerentService) Get(ctx context.Context, querentID, callerID string) (domain.Querent, error) {
	q, err := s.Store.Querents().GetQuerentByID(ctx, querentID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Querent{}, ErrQuerentNotFound
	}
	if err != nil {
		return domain.Querent{}, err
	}
	if !q.Global() && q.OwnerID != callerID {
		return domain.Querent{}, ErrQuerentNotFound
	}
	return q, nil
}

// List returns the caller's querents plus the global ones.
func (s *QuerentService) List(ctx context.Context, ownerID string) ([]domain.Querent, error) {
	return s.Store.Querents().ListQuerentsForOwner(ctx, ownerID)
}

// Update renames a personal querent or changes its description.
func (s *QuerentService) Update(ctx context.Context, querentID, callerID, name, description string) (domain.Querent, error) {
	q, err := s.Get(ctx, querentID, callerID)
	if err != nil {
		return domain.Querent{}, err
	}
	if q.Global() {
		return domain.Querent{}, ErrGlobalQuerentLocked
	}

	nameLower := domain.NormalizeName(name)
	if nameLower == "" {
		return domain.Querent{}, ErrInvalidQuerentName
	}

	q.Name = name
	q.NameLower = nameLower
	q.Description = description
	q.UpdatedAt = s.now()

	if err := s.Store.Querents().UpdateQuerent(ctx, q); err != nil {
		return domain.Querent{}, err
	}
	return q, nil
}

// Delete removes a personal querent owned by the caller.
func (s *QuerentService) Delete(ctx context.Context, querentID, callerID string) error {
	q, err := s.Get(ctx, querentID, callerID)
	if err != nil {
		return err
	}
	if q.Global() {
		return ErrGlobalQuerentLocked
	}
	if q.OwnerID != callerID {
		return ErrQuerentNotOwned
	}
	return s.Store.Querents().DeleteQuerent(ctx, querentID)
}
