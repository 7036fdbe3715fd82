package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
)

const uniqueViolation = pq.ErrorCode("23505")

// UserRepository provides database access for student accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Duplicate email and duplicate (roll, course)
// are rejected atomically by the unique indexes; the resulting constraint
// violations are mapped to their distinct user-facing messages.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (email, password, name, dob, roll, course, phone, attendance, internal_grade)
		VALUES (:email, :password, :name, :dob, :roll, :course, :phone, :attendance, :internal_grade)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if pqErr.Constraint == "uq_users_roll_course" {
				return appErrors.Clone(appErrors.ErrDuplicateRoll,
					fmt.Sprintf("Roll No %s is already registered!", user.Roll))
			}
			return appErrors.ErrDuplicateEmail
		}
		return wrapDB("create user", err)
	}
	return nil
}

// FindByCredentials returns the user matching the exact email + password
// pair, or sql.ErrNoRows.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	const query = `SELECT email, password, COALESCE(name, '') AS name, COALESCE(dob, '') AS dob, roll, course,
		COALESCE(phone, '') AS phone, COALESCE(attendance, '') AS attendance, COALESCE(internal_grade, '') AS internal_grade
		FROM users WHERE email = $1 AND password = $2 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email, password); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapDB("find user by credentials", err)
	}
	return &user, nil
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT email, password, COALESCE(name, '') AS name, COALESCE(dob, '') AS dob, roll, course,
		COALESCE(phone, '') AS phone, COALESCE(attendance, '') AS attendance, COALESCE(internal_grade, '') AS internal_grade
		FROM users WHERE email = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapDB("find user by email", err)
	}
	return &user, nil
}

// FindEmailByIdentity recovers an email from name/roll/course. Matching is
// case-insensitive; name participates only when provided.
func (r *UserRepository) FindEmailByIdentity(ctx context.Context, name, roll, course string) (string, error) {
	var email string
	var err error
	if name != "" {
		const query = `SELECT email FROM users WHERE LOWER(name) = $1 AND LOWER(roll) = $2 AND LOWER(course) = $3 LIMIT 1`
		err = r.db.GetContext(ctx, &email, query, strings.ToLower(name), strings.ToLower(roll), strings.ToLower(course))
	} else {
		const query = `SELECT email FROM users WHERE LOWER(roll) = $1 AND LOWER(course) = $2 LIMIT 1`
		err = r.db.GetContext(ctx, &email, query, strings.ToLower(roll), strings.ToLower(course))
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", wrapDB("find email by identity", err)
	}
	return email, nil
}

// GetProfile returns the student-visible slice of a user row.
func (r *UserRepository) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	const query = `SELECT COALESCE(name, '') AS name, roll, course, COALESCE(phone, '') AS phone,
		COALESCE(attendance, '') AS attendance, COALESCE(internal_grade, '') AS internal_grade
		FROM users WHERE email = $1 LIMIT 1`
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapDB("get profile", err)
	}
	return &profile, nil
}

// UpdateProfile overwrites the mutable profile fields and reports the
// number of affected rows.
func (r *UserRepository) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (int64, error) {
	const query = `UPDATE users SET name = $1, roll = $2, course = $3, phone = $4 WHERE email = $5`
	res, err := r.db.ExecContext(ctx, query, req.Name, req.Roll, req.Course, req.Phone, req.Email)
	if err != nil {
		return 0, wrapDB("update profile", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, wrapDB("update profile affected rows", err)
	}
	return affected, nil
}

// List returns the full admin roster.
func (r *UserRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	const query = `SELECT COALESCE(name, '') AS name, email, roll, course, COALESCE(phone, '') AS phone,
		COALESCE(dob, '') AS dob, COALESCE(attendance, '') AS attendance, COALESCE(internal_grade, '') AS internal_grade
		FROM users`
	var users []models.AdminUser
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, wrapDB("list users", err)
	}
	return users, nil
}

// UpdateAttendance sets attendance and internal grade for a user.
func (r *UserRepository) UpdateAttendance(ctx context.Context, email, attendance, grade string) error {
	const query = `UPDATE users SET attendance = $1, internal_grade = $2 WHERE email = $3`
	if _, err := r.db.ExecContext(ctx, query, attendance, grade, email); err != nil {
		return wrapDB("update attendance", err)
	}
	return nil
}

// Delete removes a user row by email.
func (r *UserRepository) Delete(ctx context.Context, email string) error {
	const query = `DELETE FROM users WHERE email = $1`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return wrapDB("delete user", err)
	}
	return nil
}

// FindEmailByRoll resolves a roll number to the owning email.
func (r *UserRepository) FindEmailByRoll(ctx context.Context, roll string) (string, error) {
	const query = `SELECT email FROM users WHERE roll = $1 LIMIT 1`
	var email string
	if err := r.db.GetContext(ctx, &email, query, roll); err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", wrapDB("find email by roll", err)
	}
	return email, nil
}

// FindByRoll locates a student by roll with optional name and course
// filters, the admin result-lookup path.
func (r *UserRepository) FindByRoll(ctx context.Context, roll, nameFilter, courseFilter string) (*models.User, error) {
	query := `SELECT email, password, COALESCE(name, '') AS name, COALESCE(dob, '') AS dob, roll, course,
		COALESCE(phone, '') AS phone, COALESCE(attendance, '') AS attendance, COALESCE(internal_grade, '') AS internal_grade
		FROM users WHERE roll = $1`
	args := []interface{}{roll}
	if nameFilter != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args)+1)
		args = append(args, "%"+nameFilter+"%")
	}
	if courseFilter != "" {
		query += fmt.Sprintf(" AND course = $%d", len(args)+1)
		args = append(args, courseFilter)
	}
	query += " LIMIT 1"

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapDB("find user by roll", err)
	}
	return &user, nil
}
