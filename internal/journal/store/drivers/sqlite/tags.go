package sqlite

import (
	"context"

	"github.com/arcanajournal/arcana/internal/journal/domain"
)

type tagsRepo struct {
	q queryer
}

// EnsureTag is the resolver's concurrency primitive: insert unless the
// (name_lower, owner_id) unique index already holds a row, then read back
// whichever row survived. Concurrent callers all land on the same row.
func (r *tagsRepo) EnsureTag(ctx context.Context, t domain.Tag) (domain.Tag, bool, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tags (id, name, name_lower, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name_lower, owner_id) DO NOTHING`,
		t.ID, t.Name, t.NameLower, t.OwnerID, t.CreatedAt.UTC())
	if err != nil {
		return domain.Tag{}, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return domain.Tag{}, false, err
	}

	got, err := r.GetTagByName(ctx, t.NameLower, t.OwnerID)
	if err != nil {
		return domain.Tag{}, false, err
	}
	return got, inserted > 0, nil
}

func (r *tagsRepo) GetTagByID(ctx context.Context, id string) (domain.Tag, error) {
	var t domain.Tag
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, name_lower, owner_id, created_at
		FROM tags WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.NameLower, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		return domain.Tag{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tagsRepo) GetTagByName(ctx context.Context, nameLower, ownerID string) (domain.Tag, error) {
	var t domain.Tag
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, name_lower, owner_id, created_at
		FROM tags WHERE name_lower = ? AND owner_id = ?`, nameLower, ownerID).
		Scan(&t.ID, &t.Name, &t.NameLower, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		return domain.Tag{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tagsRepo) ListTagsForOwner(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, name_lower, owner_id, created_at
		FROM tags WHERE owner_id IN (?, '')
		ORDER BY name_lower`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.NameLower, &t.OwnerID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tagsRepo) DeleteTag(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	return err
}

func (r *tagsRepo) DeleteTagsByOwner(ctx context.Context, ownerID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM tags WHERE owner_id = ?`, ownerID)
	return err
}
