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
	ErrDeckNotFound    = errors.New("deck not found")
	ErrInvalidDeckName = errors.New("invalid deck name")
)

// DeckService manages an account's card decks.
type DeckService struct {
	Store store.Store

	Now func() time.Time
}

func (s *DeckService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *DeckService) Create(ctx context.Context, ownerID, name, description string, cardCount int) (domain.Deck, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Deck{}, ErrInvalidDeckName
	}

	now := s.now()
	d := domain.Deck{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CardCount:   cardCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Decks().CreateDeck(ctx, d); err != nil {
		return domain.Deck{}, err
	}
	return d, nil
}

// Get returns a deck owned by the caller. Foreign decks read as not found.
func (s *DeckService) Get(ctx context.Context, deckID, callerID string) (domain.Deck, error) {
	d, err := s.Store.Decks().GetDeckByID(ctx, deckID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Deck{}, ErrDeckNotFound
	}
	if err != nil {
		return domain.Deck{}, err
	}
	if d.OwnerID != callerID {
		return domain.Deck{}, ErrDeckNotFound
	}
	return d, nil
}

func (s *DeckService) List(ctx context.Context, ownerID string) ([]domain.Deck, error) {
	return s.Store.Decks().ListDecksByOwner(ctx, ownerID)
}

func (s *DeckService) Update(ctx context.Context, deckID, callerID, name, description string, cardCount int) (domain.Deck, error) {
	d, err := s.Get(ctx, deckID, callerID)
	if err != nil {
		return domain.Deck{}, err
	}
	if strings.TrimSpace(name) == "" {
		return domain.Deck{}, ErrInvalidDeckName
	}

	d.Name = name
	d.Description = description
	d.CardCount = cardCount
	d.UpdatedAt = s.now()

	if err := s.Store.Decks().UpdateDeck(ctx, d); err != nil {
		return domain.Deck{}, err
	}
	return d, nil
}

func (s *DeckService) Delete(ctx context.Context, deckID, callerID string) error {
	if _, err := s.Get(ctx, deckID, callerID); err != nil {
		return err
	}
	return s.Store.Decks().DeleteDeck(ctx, deckID)
}
