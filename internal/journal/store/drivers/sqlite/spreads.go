package sqlite

import (
	"context"

	"github.com/arcanajournal/arcana/internal/journal/domain"
)

type spreadsRepo struct {
	q queryer
}

func (r *spreadsRepo) CreateSpread(ctx context.Context, s domain.Spread) error {
	positions, err := marshalJSON(s.Positions)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO spreads (id, owner_id, name, description, positions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.OwnerID, s.Name, s.Description, positions,
		s.CreatedAt.UTC(), s.UpdatedAt.UTC())
	return err
}

func (r *spreadsRepo) GetSpreadByID(ctx context.Context, id string) (domain.Spread, error) {
	var s domain.Spread
	var positions string
	err := r.q.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, positions, created_at, updated_at
		FROM spreads WHERE id = ?`, id).
		Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &positions,
			&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Spread{}, mapNotFound(err)
	}
	if err := unmarshalJSON(positions, &s.Positions); err != nil {
		return domain.Spread{}, err
	}
	return s, nil
}

func (r *spreadsRepo) ListSpreadsByOwner(ctx context.Context, ownerID string) ([]domain.Spread, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, owner_id, name, description, positions, created_at, updated_at
		FROM spreads WHERE owner_id = ?
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Spread
	for rows.Next() {
		var s domain.Spread
		var positions string
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description,
			&positions, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(positions, &s.Positions); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *spreadsRepo) UpdateSpread(ctx context.Context, s domain.Spread) error {
	positions, err := marshalJSON(s.Positions)
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, `
		UPDATE spreads
		SET name = ?, description = ?, positions = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.Description, positions, s.UpdatedAt.UTC(), s.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *spreadsRepo) DeleteSpread(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM spreads WHERE id = ?`, id)
	return err
}

func (r *spreadsRepo) DeleteSpreadsByOwner(ctx context.Context, ownerID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM spreads WHERE owner_id = ?`, ownerID)
	return err
}
