package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campusops/coe-api/internal/models"
)

// ResultRepository manages exam mark rows.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new instance of ResultRepository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// InsertMany inserts several mark rows for one user inside a transaction.
func (r *ResultRepository) InsertMany(ctx context.Context, email string, entries []models.MarkEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDB("begin bulk marks tx", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const stmt = `INSERT INTO results (email, subject, marks, total_marks) VALUES ($1, $2, $3, $4)`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, stmt, email, entry.Subject, entry.Marks.String(), entry.Total.String()); err != nil {
			return wrapDB("insert mark row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapDB("commit bulk marks tx", err)
	}
	return nil
}

// Insert adds a single mark row with a semester label, the spreadsheet
// import path.
func (r *ResultRepository) Insert(ctx context.Context, result models.Result) error {
	const stmt = `INSERT INTO results (email, subject, marks, total_marks, semester) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, stmt, result.Email, result.Subject, result.Marks, result.TotalMarks, result.Semester); err != nil {
		return wrapDB("insert result", err)
	}
	return nil
}

// ListByEmail returns a user's marks.
func (r *ResultRepository) ListByEmail(ctx context.Context, email string) ([]models.ResultView, error) {
	const query = `SELECT subject, marks, total_marks FROM results WHERE email = $1`
	var results []models.ResultView
	if err := r.db.SelectContext(ctx, &results, query, email); err != nil {
		return nil, wrapDB("list results", err)
	}
	return results, nil
}

// ListByEmailWithID returns a user's marks including row ids for editing.
func (r *ResultRepository) ListByEmailWithID(ctx context.Context, email string) ([]models.AdminResultView, error) {
	const query = `SELECT id, subject, marks, total_marks FROM results WHERE email = $1`
	var results []models.AdminResultView
	if err := r.db.SelectContext(ctx, &results, query, email); err != nil {
		return nil, wrapDB("list results with id", err)
	}
	return results, nil
}

// Update edits the marks of one row.
func (r *ResultRepository) Update(ctx context.Context, id int64, marks, total string) error {
	const stmt = `UPDATE results SET marks = $1, total_marks = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, stmt, marks, total, id); err != nil {
		return wrapDB("update result", err)
	}
	return nil
}

// DeleteByID removes one mark row.
func (r *ResultRepository) DeleteByID(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM results WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, stmt, id); err != nil {
		return wrapDB("delete result", err)
	}
	return nil
}

// DeleteByEmail removes every mark row for one user.
func (r *ResultRepository) DeleteByEmail(ctx context.Context, email string) error {
	const stmt = `DELETE FROM results WHERE email = $1`
	if _, err := r.db.ExecContext(ctx, stmt, email); err != nil {
		return wrapDB("delete results by email", err)
	}
	return nil
}

// DeleteAll clears the results table.
func (r *ResultRepository) DeleteAll(ctx context.Context) error {
	const stmt = `DELETE FROM results`
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return wrapDB("delete all results", err)
	}
	return nil
}

// ListAll returns every mark row, used by the CSV export.
func (r *ResultRepository) ListAll(ctx context.Context) ([]models.Result, error) {
	const query = `SELECT id, email, subject, marks, total_marks, COALESCE(semester, '') AS semester FROM results ORDER BY email, id`
	var results []models.Result
	if err := r.db.SelectContext(ctx, &results, query); err != nil {
		return nil, wrapDB("list all results", err)
	}
	return results, nil
}
