package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
)

// IDCardRepository manages identity-card applications.
type IDCardRepository struct {
	db *sqlx.DB
}

// NewIDCardRepository creates a new instance of IDCardRepository.
func NewIDCardRepository(db *sqlx.DB) *IDCardRepository {
	return &IDCardRepository{db: db}
}

// Create inserts a new application with status Pending. A duplicate
// (roll_no, department, academic_year) triple is rejected atomically by the
// unique index.
func (r *IDCardRepository) Create(ctx context.Context, app *models.IDApplication) error {
	const query = `INSERT INTO id_applications
		(email, full_name, roll_no, department, academic_year, father_name, mother_name, phone, gender,
		 photo_path, signature_path, marksheet_path, status)
		VALUES (:email, :full_name, :roll_no, :department, :academic_year, :father_name, :mother_name, :phone, :gender,
		 :photo_path, :signature_path, :marksheet_path, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return appErrors.Clone(appErrors.ErrDuplicateApp,
				fmt.Sprintf("You already applied for %s", app.AcademicYear))
		}
		return wrapDB("create id application", err)
	}
	return nil
}

// ListPending returns applications awaiting review.
func (r *IDCardRepository) ListPending(ctx context.Context) ([]models.PendingApplication, error) {
	const query = `SELECT id, COALESCE(full_name, '') AS full_name, roll_no, department,
		COALESCE(father_name, '') AS father_name, COALESCE(mother_name, '') AS mother_name,
		COALESCE(photo_path, '') AS photo_path, COALESCE(marksheet_path, '') AS marksheet_path,
		academic_year, COALESCE(phone, '') AS phone
		FROM id_applications WHERE status = 'Pending'`
	var apps []models.PendingApplication
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, wrapDB("list pending applications", err)
	}
	return apps, nil
}

// UpdateStatus moves an application to a new status. uniqueID is set on
// approval and nil otherwise, clearing any previously issued identifier.
func (r *IDCardRepository) UpdateStatus(ctx context.Context, id int64, status string, uniqueID *string) error {
	const stmt = `UPDATE id_applications SET status = $1, unique_id = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, stmt, status, uniqueID, id); err != nil {
		return wrapDB("update application status", err)
	}
	return nil
}

const applicationColumns = `id, email, COALESCE(full_name, '') AS full_name, roll_no, department, academic_year,
	COALESCE(father_name, '') AS father_name, COALESCE(mother_name, '') AS mother_name,
	COALESCE(phone, '') AS phone, COALESCE(gender, '') AS gender,
	COALESCE(photo_path, '') AS photo_path, COALESCE(signature_path, '') AS signature_path,
	COALESCE(marksheet_path, '') AS marksheet_path, status, unique_id, created_at`

// FindApprovedByEmail returns the approved application for an email, or
// sql.ErrNoRows when none has been approved.
func (r *IDCardRepository) FindApprovedByEmail(ctx context.Context, email string) (*models.IDApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM id_applications WHERE email = $1 AND status = 'Approved' LIMIT 1`, applicationColumns)
	var app models.IDApplication
	if err := r.db.GetContext(ctx, &app, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapDB("find approved application", err)
	}
	return &app, nil
}

// Update overwrites the editable fields of an application. Status and
// issued identifier are untouched.
func (r *IDCardRepository) Update(ctx context.Context, req models.FullEditIDRequest) error {
	const stmt = `UPDATE id_applications
		SET full_name = $1, roll_no = $2, father_name = $3, mother_name = $4, department = $5, academic_year = $6, phone = $7
		WHERE id = $8`
	if _, err := r.db.ExecContext(ctx, stmt, req.FullName, req.RollNo, req.FatherName, req.MotherName,
		req.Department, req.AcademicYear, req.Phone, req.ID); err != nil {
		return wrapDB("update id application", err)
	}
	return nil
}

// UpdatePhotoPath replaces the stored photo file name.
func (r *IDCardRepository) UpdatePhotoPath(ctx context.Context, id int64, path string) error {
	const stmt = `UPDATE id_applications SET photo_path = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, stmt, path, id); err != nil {
		return wrapDB("update photo path", err)
	}
	return nil
}

// UpdateMarksheetPath replaces the stored marksheet file name.
func (r *IDCardRepository) UpdateMarksheetPath(ctx context.Context, id int64, path string) error {
	const stmt = `UPDATE id_applications SET marksheet_path = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, stmt, path, id); err != nil {
		return wrapDB("update marksheet path", err)
	}
	return nil
}

// ListApproved returns approved applications, newest first.
func (r *IDCardRepository) ListApproved(ctx context.Context) ([]models.IDApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM id_applications WHERE status = 'Approved' ORDER BY id DESC`, applicationColumns)
	var apps []models.IDApplication
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, wrapDB("list approved applications", err)
	}
	return apps, nil
}

// ListByEmail returns every application submitted by an email, most recent
// academic year first.
func (r *IDCardRepository) ListByEmail(ctx context.Context, email string) ([]models.IDApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM id_applications WHERE email = $1 ORDER BY academic_year DESC`, applicationColumns)
	var apps []models.IDApplication
	if err := r.db.SelectContext(ctx, &apps, query, email); err != nil {
		return nil, wrapDB("list applications by email", err)
	}
	return apps, nil
}
