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
	ErrTagNotFound         = errors.New("tag not found")
	ErrInvalidTagName      = errors.New("invalid tag name")
	ErrTagReservedGlobally = errors.New("tag name is reserved by a global tag")
	ErrGlobalTagAdminOnly  = errors.New("only admins may manage global tags")
	ErrTagDeleteNotAllowed = errors.New("tag is not owned by the caller")
)

// TagService resolves tag names to tag records. Tags are created lazily on
// first use; the database unique index, not any in-process lock, arbitrates
// concurrent creation.
type TagService struct {
	Store store.Store

	Now func() time.Time
}

func (s *TagService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ResolveOrCreate returns the tag with the given name in the owner's
// namespace, creating it when missing. Pass domain.GlobalOwner as ownerID
// to resolve in the shared namespace. A personal tag whose name collides
// with an existing global tag is rejected with ErrTagReservedGlobally.
//
// Any number of concurrent calls with the same (name, owner) end up on the
// same single row; creation races are absorbed by the upsert, never
// surfaced to the caller.
func (s *TagService) ResolveOrCreate(ctx context.Context, name, ownerID string) (domain.Tag, error) {
	nameLower := domain.NormalizeName(name)
	if nameLower == "" {
		return domain.Tag{}, ErrInvalidTagName
	}

	if ownerID != domain.GlobalOwner {
		// Global names shadow personal ones; checked explicitly since the
		// unique index only covers a single owner namespace.
		_, err := s.Store.Tags().GetTagByName(ctx, nameLower, domain.GlobalOwner)
		switch {
		case err == nil:
			return domain.Tag{}, ErrTagReservedGlobally
		case !errors.Is(err, store.ErrNotFound):
			return domain.Tag{}, err
		}
	}

	tag, _, err := s.Store.Tags().EnsureTag(ctx, domain.Tag{
		ID:        idx.New().String(),
		Name:      name,
		NameLower: nameLower,
		OwnerID:   ownerID,
		CreatedAt: s.now(),
	})
	return tag, err
}

// List returns the caller's tags plus all global tags.
func (s *TagService) List(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	return s.Store.Tags().ListTagsForOwner(ctx, ownerID)
}

// Delete removes a tag. Personal tags may be deleted by their owner; global
// tags only by admins.
func (s *TagService) Delete(ctx context.Context, tagID, callerID string, callerAdmin bool) error {
	tag, err := s.Store.Tags().GetTagByID(ctx, tagID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTagNotFound
	}
	if err != nil {
		return err
	}

	if tag.Global() {
		if !callerAdmin {
			return ErrGlobalTagAdminOnly
		}
	} else if tag.OwnerID != callerID {
		return ErrTagDeleteNotAllowed
	}

	return s.Store.Tags().DeleteTag(ctx, tagID)
}
