package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/store"
)

type accountsRepo struct {
	q queryer
}

const accountColumns = `id, username, email, password_hash, is_admin,
	is_deleted, deleted_at, notice_sent, notice_sent_at, final_notice_sent,
	created_at, updated_at`

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var a domain.Account
	var deletedAt, noticeSentAt sql.NullTime
	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Admin,
		&a.Deleted, &deletedAt, &a.NoticeSent, &noticeSentAt, &a.FinalNoticeSent,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	a.DeletedAt = mapNullTimePtr(deletedAt)
	a.NoticeSentAt = mapNullTimePtr(noticeSentAt)
	return a, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Email, a.PasswordHash, a.Admin,
		a.Deleted, mapOptionalTime(a.DeletedAt), a.NoticeSent,
		mapOptionalTime(a.NoticeSentAt), a.FinalNoticeSent,
		a.CreatedAt.UTC(), a.UpdatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	a, err := scanAccount(r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	a, err := scanAccount(r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) MarkDeletionRequested(ctx context.Context, accountID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE accounts
		SET is_deleted = 1, deleted_at = ?,
		    notice_sent = 0, notice_sent_at = NULL, final_notice_sent = 0,
		    updated_at = ?
		WHERE id = ?`,
		at.UTC(), at.UTC(), accountID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) ClearDeletion(ctx context.Context, accountID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE accounts
		SET is_deleted = 0, deleted_at = NULL,
		    notice_sent = 0, notice_sent_at = NULL, final_notice_sent = 0,
		    updated_at = ?
		WHERE id = ?`,
		at.UTC(), accountID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// MarkNoticeSent is a compare-and-set: the flag flips only while the account
// is still soft-deleted and unflagged, so a cancel that races the sweep wins.
func (r *accountsRepo) MarkNoticeSent(ctx context.Context, accountID string, at time.Time) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE accounts
		SET notice_sent = 1, notice_sent_at = ?, updated_at = ?
		WHERE id = ? AND is_deleted = 1 AND notice_sent = 0`,
		at.UTC(), at.UTC(), accountID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// MarkFinalNoticeSent additionally requires the first reminder to have been
// recorded, so final_notice_sent can never lead notice_sent.
func (r *accountsRepo) MarkFinalNoticeSent(ctx context.Context, accountID string, at time.Time) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE accounts
		SET final_notice_sent = 1, updated_at = ?
		WHERE id = ? AND is_deleted = 1 AND notice_sent = 1 AND final_notice_sent = 0`,
		at.UTC(), accountID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *accountsRepo) ListNoticeDue(ctx context.Context, cutoff time.Time) ([]domain.Account, error) {
	return r.listDeleted(ctx, `notice_sent = 0 AND deleted_at <= ?`, cutoff)
}

func (r *accountsRepo) ListFinalNoticeDue(ctx context.Context, cutoff time.Time) ([]domain.Account, error) {
	return r.listDeleted(ctx, `notice_sent = 1 AND final_notice_sent = 0 AND deleted_at <= ?`, cutoff)
}

func (r *accountsRepo) ListPurgeDue(ctx context.Context, cutoff time.Time) ([]domain.Account, error) {
	return r.listDeleted(ctx, `deleted_at <= ?`, cutoff)
}

func (r *accountsRepo) listDeleted(ctx context.Context, cond string, cutoff time.Time) ([]domain.Account, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE is_deleted = 1 AND `+cond+`
		ORDER BY deleted_at`, cutoff.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, accountID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
