package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/validform/internal/database"
)

// SubmissionRepo handles completed form submissions.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// Save stores a submission and returns it with its generated id.
func (r *SubmissionRepo) Save(ctx context.Context, values []FieldValue) (Submission, error) {
	sub := Submission{
		ID:        uuid.NewString(),
		CreatedAt: database.Now(),
		Values:    values,
	}
	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO submissions(id, created_at) VALUES (?, ?)`,
			sub.ID, sub.CreatedAt); err != nil {
			return err
		}
		for _, v := range values {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO submission_values(submission_id, field_key, value) VALUES (?, ?, ?)`,
				sub.ID, v.Key, v.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// Recent returns the newest submissions with their values, newest first.
func (r *SubmissionRepo) Recent(ctx context.Context, limit int) ([]Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at FROM submissions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		vals, err := r.values(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Values = vals
	}
	return out, nil
}

// Count returns the number of stored submissions.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n)
	return n, err
}

func (r *SubmissionRepo) values(ctx context.Context, submissionID string) ([]FieldValue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT field_key, value FROM submission_values WHERE submission_id = ? ORDER BY field_key`,
		submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FieldValue
	for rows.Next() {
		var v FieldValue
		if err := rows.Scan(&v.Key, &v.Value); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
