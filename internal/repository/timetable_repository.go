package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campusops/coe-api/internal/models"
)

// TimetableRepository manages timetable slots.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates a new instance of TimetableRepository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// Insert adds one slot.
func (r *TimetableRepository) Insert(ctx context.Context, req models.AddTimetableRequest) error {
	const stmt = `INSERT INTO timetable (course, year_sem, time_slot, subject, room_no) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, stmt, req.Course, req.Year, req.Time, req.Subject, req.Room); err != nil {
		return wrapDB("insert timetable entry", err)
	}
	return nil
}

// Delete removes a slot by id.
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM timetable WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, stmt, id); err != nil {
		return wrapDB("delete timetable entry", err)
	}
	return nil
}

// List returns every slot.
func (r *TimetableRepository) List(ctx context.Context) ([]models.TimetableEntry, error) {
	const query = `SELECT id, course, year_sem, time_slot, subject, room_no FROM timetable`
	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, wrapDB("list timetable", err)
	}
	return entries, nil
}
