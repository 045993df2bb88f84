package coverletters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const letterColumns = `id, user_id, title, company_name, job_title, content, created_at, updated_at`

// Create inserts a new cover letter.
func (r *PGRepo) Create(ctx context.Context, l CoverLetter) error {
	const query = `
INSERT INTO cover_letters (id, user_id, title, company_name, job_title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		l.ID,
		l.UserID,
		l.Title,
		l.CompanyName,
		l.JobTitle,
		l.Content,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return err
}

// GetByID fetches a cover letter by id for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (CoverLetter, error) {
	query := fmt.Sprintf(`SELECT %s FROM cover_letters WHERE user_id = $1 AND id = $2 LIMIT 1`, letterColumns)
	var l CoverLetter
	err := r.DB.QueryRowContext(ctx, query, userID, id).Scan(
		&l.ID, &l.UserID, &l.Title, &l.CompanyName, &l.JobTitle, &l.Content, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	return l, nil
}

// ListByUser lists a user's cover letters, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	query := fmt.Sprintf(`SELECT %s FROM cover_letters WHERE user_id = $1 ORDER BY created_at DESC`, letterColumns)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Update overwrites a cover letter owned by the same user. Last write wins.
func (r *PGRepo) Update(ctx context.Context, l CoverLetter) error {
	const query = `
UPDATE cover_letters
SET title = $1, company_name = $2, job_title = $3, content = $4, updated_at = $5
WHERE user_id = $6 AND id = $7`

	result, err := r.DB.ExecContext(ctx, query, l.Title, l.CompanyName, l.JobTitle, l.Content, l.UpdatedAt, l.UserID, l.ID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a cover letter owned by the user. Irreversible.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM cover_letters WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent lists the most recent cover letters across all users, for the admin view.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]CoverLetter, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM cover_letters ORDER BY created_at DESC LIMIT $1`, letterColumns)
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// DeleteAny removes a cover letter regardless of owner, for the admin view.
func (r *PGRepo) DeleteAny(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM cover_letters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(rows *sql.Rows) ([]CoverLetter, error) {
	var out []CoverLetter
	for rows.Next() {
		var l CoverLetter
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.CompanyName, &l.JobTitle, &l.Content, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
