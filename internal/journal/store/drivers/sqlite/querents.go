package sqlite

import (
	"context"

	"github.com/arcanajournal/arcana/internal/journal/domain"
)

type querentsRepo struct {
	q queryer
}

const querentColumns = `id, name, name_lower, owner_id, description, created_at, updated_at`

func (r *querentsRepo) EnsureQuerent(ctx context.Context, q domain.Querent) (domain.Querent, bool, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO querents (`+querentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name_lower, owner_id) DO NOTHING`,
		q.ID, q.Name, q.NameLower, q.OwnerID, q.Description,
		q.CreatedAt.UTC(), q.UpdatedAt.UTC())
	if err != nil {
		return domain.Querent{}, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return domain.Querent{}, false, err
	}

	got, err := r.GetQuerentByName(ctx, q.NameLower, q.OwnerID)
	if err != nil {
		return domain.Querent{}, false, err
	}
	return got, inserted > 0, nil
}

func (r *querentsRepo) GetQuerentByID(ctx context.Context, id string) (domain.Querent, error) {
	q, err := scanQuerent(r.q.QueryRowContext(ctx,
		`SELECT `+querentColumns+` FROM querents WHERE id = ?`, id))
	if err != nil {
		return domain.Querent{}, mapNotFound(err)
	}
	return q, nil
}

func (r *querentsRepo) GetQuerentByName(ctx context.Context, nameLower, ownerID string) (domain.Querent, error) {
	q, err := scanQuerent(r.q.QueryRowContext(ctx,
		`SELECT `+querentColumns+` FROM querents WHERE name_lower = ? AND owner_id = ?`,
		nameLower, ownerID))
	if err != nil {
		return domain.Querent{}, mapNotFound(err)
	}
	return q, nil
}

func (r *querentsRepo) ListQuerentsForOwner(ctx context.Context, ownerID string) ([]domain.Querent, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+querentColumns+` FROM querents
		WHERE owner_id IN (?, '')
		ORDER BY name_lower`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Querent
	for rows.Next() {
		q, err := scanQuerent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *querentsRepo) UpdateQuerent(ctx context.Context, q domain.Querent) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE querents
		SET name = ?, name_lower = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		q.Name, q.NameLower, q.Description, q.UpdatedAt.UTC(), q.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *querentsRepo) DeleteQuerent(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM querents WHERE id = ?`, id)
	return err
}

func (r *querentsRepo) DeleteQuerentsByOwner(ctx context.Context, ownerID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM querents WHERE owner_id = ?`, ownerID)
	return err
}

func scanQuerent(row interface{ Scan(...any) error }) (domain.Querent, error) {
	var q domain.Querent
	err := row.Scan(&q.ID, &q.Name, &q.NameLower, &q.OwnerID, &q.Description,
		&q.CreatedAt, &q.UpdatedAt)
	return q, err
}
