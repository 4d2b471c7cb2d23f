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

var ErrReadingNotFound = errors.New("reading not found")

// SelfQuerentRef is the request-level alias for the shared Self querent.
const SelfQuerentRef = "self"

// ReadingInput is the caller-provided content of a reading. Querent is
// either a querent id or SelfQuerentRef; Tags are free-form names resolved
// (and lazily created) on write.
type ReadingInput struct {
	Title          string
	Question       string
	Interpretation string
	Querent        string
	DeckID         string
	SpreadID       string
	Cards          []domain.CardDraw
	Tags           []string
	ReadAt         time.Time
}

// ReadingService manages journal entries and wires them to their reference
// entities.
type ReadingService struct {
	Store    store.Store
	Tags     *TagService
	Querents *QuerentService
	Decks    *DeckService
	Spreads  *SpreadService

	Now func() time.Time
}

func (s *ReadingService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *ReadingService) Create(ctx context.Context, ownerID string, in ReadingInput) (domain.Reading, []domain.Tag, error) {
	rd := domain.Reading{
		ID:      idx.New().String(),
		OwnerID: ownerID,
	}
	if err := s.applyInput(ctx, &rd, ownerID, in); err != nil {
		return domain.Reading{}, nil, err
	}
	rd.CreatedAt = s.now()
	rd.UpdatedAt = rd.CreatedAt

	tags, tagIDs, err := s.resolveTags(ctx, ownerID, in.Tags)
	if err != nil {
		return domain.Reading{}, nil, err
	}

	// The reading and its tag links land together: a failed tag write rolls
	// the reading back instead of leaving an untagged entry behind.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Readings().CreateReading(ctx, rd); err != nil {
			return err
		}
		return tx.Readings().ReplaceReadingTags(ctx, rd.ID, tagIDs)
	})
	if err != nil {
		return domain.Reading{}, nil, err
	}
	return rd, tags, nil
}

// Get returns a reading owned by the caller together with its tags.
func (s *ReadingService) Get(ctx context.Context, readingID, callerID string) (domain.Reading, []domain.Tag, error) {
	rd, err := s.Store.Readings().GetReadingByID(ctx, readingID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Reading{}, nil, ErrReadingNotFound
	}
	if err != nil {
		return domain.Reading{}, nil, err
	}
	if rd.OwnerID != callerID {
		return domain.Reading{}, nil, ErrReadingNotFound
	}

	tags, err := s.Store.Readings().ListReadingTags(ctx, readingID)
	if err != nil {
		return domain.Reading{}, nil, err
	}
	return rd, tags, nil
}

func (s *ReadingService) List(ctx context.Context, ownerID string) ([]domain.Reading, error) {
	return s.Store.Readings().ListReadingsByOwner(ctx, ownerID)
}

func (s *ReadingService) Update(ctx context.Context, readingID, callerID string, in ReadingInput) (domain.Reading, []domain.Tag, error) {
	rd, _, err := s.Get(ctx, readingID, callerID)
	if err != nil {
		return domain.Reading{}, nil, err
	}

	if err := s.applyInput(ctx, &rd, callerID, in); err != nil {
		return domain.Reading{}, nil, err
	}
	rd.UpdatedAt = s.now()

	tags, tagIDs, err := s.resolveTags(ctx, callerID, in.Tags)
	if err != nil {
		return domain.Reading{}, nil, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Readings().UpdateReading(ctx, rd); err != nil {
			return err
		}
		return tx.Readings().ReplaceReadingTags(ctx, rd.ID, tagIDs)
	})
	if err != nil {
		return domain.Reading{}, nil, err
	}
	return rd, tags, nil
}

func (s *ReadingService) Delete(ctx context.Context, readingID, callerID string) error {
	if _, _, err := s.Get(ctx, readingID, callerID); err != nil {
		return err
	}
	return s.Store.Readings().DeleteReading(ctx, readingID)
}

// applyInput copies in onto rd, resolving and validating every reference.
func (s *ReadingService) applyInput(ctx context.Context, rd *domain.Reading, ownerID string, in ReadingInput) error {
	rd.Title = in.Title
	rd.Question = in.Question
	rd.Interpretation = in.Interpretation
	rd.Cards = in.Cards

	rd.ReadAt = in.ReadAt.UTC()
	if in.ReadAt.IsZero() {
		rd.ReadAt = s.now()
	}

	switch ref := strings.TrimSpace(in.Querent); ref {
	case "":
		rd.QuerentID = ""
	case SelfQuerentRef:
		q, err := s.Querents.ResolveSelf(ctx)
		if err != nil {
			return err
		}
		rd.QuerentID = q.ID
	default:
		q, err := s.Querents.Get(ctx, ref, ownerID)
		if err != nil {
			return err
		}
		rd.QuerentID = q.ID
	}

	rd.DeckID = ""
	if in.DeckID != "" {
		d, err := s.Decks.Get(ctx, in.DeckID, ownerID)
		if err != nil {
			return err
		}
		rd.DeckID = d.ID
	}

	rd.SpreadID = ""
	if in.SpreadID != "" {
		sp, err := s.Spreads.Get(ctx, in.SpreadID, ownerID)
		if err != nil {
			return err
		}
		rd.SpreadID = sp.ID
	}

	return nil
}

// resolveTags maps tag names to rows, lazily creating missing ones. Names
// that collide with a global tag resolve to the global tag rather than
// creating a personal duplicate. Resolution runs outside the reading's
// transaction; EnsureTag is idempotent, so a rolled-back reading at worst
// leaves a reusable tag behind.
func (s *ReadingService) resolveTags(ctx context.Context, ownerID string, names []string) ([]domain.Tag, []string, error) {
	var tags []domain.Tag
	tagIDs := make([]string, 0, len(names))

	for _, name := range names {
		tag, err := s.Tags.ResolveOrCreate(ctx, name, ownerID)
		if errors.Is(err, ErrTagReservedGlobally) {
			tag, err = s.Tags.ResolveOrCreate(ctx, name, domain.GlobalOwner)
		}
		if err != nil {
			return nil, nil, err
		}
		tags = append(tags, tag)
		tagIDs = append(tagIDs, tag.ID)
	}
	return tags, tagIDs, nil
}
