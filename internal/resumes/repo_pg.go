package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Structured columns are stored as
// JSONB; each write is a single atomic statement (last write wins).
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, template, personal_info, summary, experience, education, skills, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, template, personal_info, summary, experience, education, skills, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	personal, experience, education, err := marshalSections(res)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.UserID,
		res.Title,
		res.Template,
		personal,
		res.Summary,
		experience,
		education,
		res.Skills,
		res.CreatedAt,
		res.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by id for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes WHERE user_id = $1 AND id = $2 LIMIT 1`, resumeColumns)
	row := r.DB.QueryRowContext(ctx, query, userID, id)
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// ListByUser lists a user's resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`, resumeColumns)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

// Update overwrites a resume owned by the same user. Last write wins.
func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	const query = `
UPDATE resumes
SET title = $1, template = $2, personal_info = $3, summary = $4, experience = $5, education = $6, skills = $7, updated_at = $8
WHERE user_id = $9 AND id = $10`

	personal, experience, education, err := marshalSections(res)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(
		ctx,
		query,
		res.Title,
		res.Template,
		personal,
		res.Summary,
		experience,
		education,
		res.Skills,
		res.UpdatedAt,
		res.UserID,
		res.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume owned by the user. Irreversible.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent lists the most recent resumes across all users, for the admin view.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM resumes ORDER BY created_at DESC LIMIT $1`, resumeColumns)
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

// DeleteAny removes a resume regardless of owner, for the admin view.
func (r *PGRepo) DeleteAny(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSections(res Resume) (personal, experience, education []byte, err error) {
	personal, err = json.Marshal(res.PersonalInfo)
	if err != nil {
		return nil, nil, nil, err
	}
	if res.Experience == nil {
		res.Experience = []Experience{}
	}
	experience, err = json.Marshal(res.Experience)
	if err != nil {
		return nil, nil, nil, err
	}
	if res.Education == nil {
		res.Education = []Education{}
	}
	education, err = json.Marshal(res.Education)
	if err != nil {
		return nil, nil, nil, err
	}
	return personal, experience, education, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var personal, experience, education []byte
	if err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.Title,
		&res.Template,
		&personal,
		&res.Summary,
		&experience,
		&education,
		&res.Skills,
		&res.CreatedAt,
		&res.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}
	if len(personal) > 0 {
		if err := json.Unmarshal(personal, &res.PersonalInfo); err != nil {
			return Resume{}, err
		}
	}
	if len(experience) > 0 {
		if err := json.Unmarshal(experience, &res.Experience); err != nil {
			return Resume{}, err
		}
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &res.Education); err != nil {
			return Resume{}, err
		}
	}
	return res, nil
}

func collectResumes(rows *sql.Rows) ([]Resume, error) {
	var out []Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
