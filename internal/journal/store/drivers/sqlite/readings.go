package sqlite

import (
	"context"

	"github.com/arcanajournal/arcana/internal/journal/domain"
)

type readingsRepo struct {
	q queryer
}

const readingColumns = `id, owner_id, title, question, interpretation,
	querent_id, deck_id, spread_id, cards, read_at, created_at, updated_at`

func (r *readingsRepo) CreateReading(ctx context.Context, rd domain.Reading) error {
	cards, err := marshalJSON(rd.Cards)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO readings (`+readingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rd.ID, rd.OwnerID, rd.Title, rd.Question, rd.Interpretation,
		rd.QuerentID, rd.DeckID, rd.SpreadID, cards,
		rd.ReadAt.UTC(), rd.CreatedAt.UTC(), rd.UpdatedAt.UTC())
	return err
}

func (r *readingsRepo) GetReadingByID(ctx context.Context, id string) (domain.Reading, error) {
	rd, err := scanReading(r.q.QueryRowContext(ctx,
		`SELECT `+readingColumns+` FROM readings WHERE id = ?`, id))
	if err != nil {
		return domain.Reading{}, mapNotFound(err)
	}
	return rd, nil
}

func (r *readingsRepo) ListReadingsByOwner(ctx context.Context, ownerID string) ([]domain.Reading, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+readingColumns+` FROM readings
		WHERE owner_id = ?
		ORDER BY read_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reading
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

func (r *readingsRepo) UpdateReading(ctx context.Context, rd domain.Reading) error {
	cards, err := marshalJSON(rd.Cards)
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, `
		UPDATE readings
		SET title = ?, question = ?, interpretation = ?,
		    querent_id = ?, deck_id = ?, spread_id = ?, cards = ?,
		    read_at = ?, updated_at = ?
		WHERE id = ?`,
		rd.Title, rd.Question, rd.Interpretation,
		rd.QuerentID, rd.DeckID, rd.SpreadID, cards,
		rd.ReadAt.UTC(), rd.UpdatedAt.UTC(), rd.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *readingsRepo) DeleteReading(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id)
	return err
}

// DeleteReadingsByOwner relies on the reading_tags FK cascade to clean up
// tag links.
func (r *readingsRepo) DeleteReadingsByOwner(ctx context.Context, ownerID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM readings WHERE owner_id = ?`, ownerID)
	return err
}

func (r *readingsRepo) ReplaceReadingTags(ctx context.Context, readingID string, tagIDs []string) error {
	if _, err := r.q.ExecContext(ctx,
		`DELETE FROM reading_tags WHERE reading_id = ?`, readingID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := r.q.ExecContext(ctx, `
			INSERT INTO reading_tags (reading_id, tag_id) VALUES (?, ?)
			ON CONFLICT DO NOTHING`, readingID, tagID); err != nil {
			return err
		}
	}
	return nil
}

func (r *readingsRepo) ListReadingTags(ctx context.Context, readingID string) ([]domain.Tag, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT t.id, t.name, t.name_lower, t.owner_id, t.created_at
		FROM tags t
		JOIN reading_tags rt ON rt.tag_id = t.id
		WHERE rt.reading_id = ?
		ORDER BY t.name_lower`, readingID)
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

func scanReading(row interface{ Scan(...any) error }) (domain.Reading, error) {
	var rd domain.Reading
	var cards string
	err := row.Scan(
		&rd.ID, &rd.OwnerID, &rd.Title, &rd.Question, &rd.Interpretation,
		&rd.QuerentID, &rd.DeckID, &rd.SpreadID, &cards,
		&rd.ReadAt, &rd.CreatedAt, &rd.UpdatedAt,
	)
	if err != nil {
		return domain.Reading{}, err
	}
	if err := unmarshalJSON(cards, &rd.Cards); err != nil {
		return domain.Reading{}, err
	}
	return rd, nil
}
