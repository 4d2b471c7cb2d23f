package sqlite

import (
	"context"

	"github.com/arcanajournal/arcana/internal/journal/domain"
)

type decksRepo struct {
	q queryer
}

func (r *decksRepo) CreateDeck(ctx context.Context, d domain.Deck) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO decks (id, owner_id, name, description, card_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.OwnerID, d.Name, d.Description, d.CardCount,
		d.CreatedAt.UTC(), d.UpdatedAt.UTC())
	return err
}

func (r *decksRepo) GetDeckByID(ctx context.Context, id string) (domain.Deck, error) {
	var d domain.Deck
	err := r.q.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, card_count, created_at, updated_at
		FROM decks WHERE id = ?`, id).
		Scan(&d.ID, &d.OwnerID, &d.Name, &d.Description, &d.CardCount,
			&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Deck{}, mapNotFound(err)
	}
	return d, nil
}

func (r *decksRepo) ListDecksByOwner(ctx context.Context, ownerID string) ([]domain.Deck, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, owner_id, name, description, card_count, created_at, updated_at
		FROM decks WHERE owner_id = ?
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Deck
	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Description,
			&d.CardCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *decksRepo) UpdateDeck(ctx context.Context, d domain.Deck) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE decks
		SET name = ?, description = ?, card_count = ?, updated_at = ?
		WHERE id = ?`,
		d.Name, d.Description, d.CardCount, d.UpdatedAt.UTC(), d.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *decksRepo) DeleteDeck(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	return err
}

func (r *decksRepo) DeleteDecksByOwner(ctx context.Context, ownerID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM decks WHERE owner_id = ?`, ownerID)
	return err
}
