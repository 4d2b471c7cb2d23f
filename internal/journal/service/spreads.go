package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/pkg/idx"
)

var (
	ErrSpreadNotFound    = errors.New("spread not found")
	ErrInvalidSpreadName = errors.New("invalid spread name")
)

// SpreadService manages an account's card layouts.
type SpreadService struct {
	Store store.Store

	Now func() time.Time
}

func (s *SpreadService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SpreadService) Create(ctx context.Context, ownerID, name, description string, positions []string) (domain.Spread, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Spread{}, ErrInvalidSpreadName
	}

	now := s.now()
	sp := domain.Spread{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Positions:   positions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Spreads().CreateSpread(ctx, sp); err != nil {
		return domain.Spread{}, err
	}
	return sp, nil
}

// Get returns a spread owned by the caller. Foreign spreads read as not
// found.
func (s *SpreadService) Get(ctx context.Context, spreadID, callerID string) (domain.Spread, error) {
	sp, err := s.Store.Spreads().GetSpreadByID(ctx, spreadID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Spread{}, ErrSpreadNotFound
	}
	if err != nil {
		return domain.Spread{}, err
	}
	if sp.OwnerID != callerID {
		return domain.Spread{}, ErrSpreadNotFound
	}
	return sp, nil
}

func (s *SpreadService) List(ctx context.Context, ownerID string) ([]domain.Spread, error) {
	return s.Store.Spreads().ListSpreadsByOwner(ctx, ownerID)
}

func (s *SpreadService) Update(ctx context.Context, spreadID, callerID, name, description string, positions []string) (domain.Spread, error) {
	sp, err := s.Get(ctx, spreadID, callerID)
	if err != nil {
		return domain.Spread{}, err
	}
	if strings.TrimSpace(name) == "" {
		return domain.Spread{}, ErrInvalidSpreadName
	}

	sp.Name = name
	sp.Description = description
	sp.Positions = positions
	sp.UpdatedAt = s.now()

	if err := s.Store.Spreads().UpdateSpread(ctx, sp); err != nil {
		return domain.Spread{}, err
	}
	return sp, nil
}

func (s *SpreadService) Delete(ctx context.Context, spreadID, callerID string) error {
	if _, err := s.Get(ctx, spreadID, callerID); err != nil {
		return err
	}
	return s.Store.Spreads().DeleteSpread(ctx, spreadID)
}
