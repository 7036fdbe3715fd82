package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/campusops/coe-api/pkg/config"
)

// NewPostgres returns a configured PostgreSQL client. The pool is bounded by
// MaxOpenConns; a saturated pool surfaces as a connection error rather than
// an unbounded wait on the caller's context.
func NewPostgres(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Bootstrap creates the schema when it does not exist yet. The unique
// indexes back the atomic duplicate rejection during registration and
// ID-card application.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			name TEXT,
			dob TEXT,
			roll TEXT NOT NULL,
			course TEXT NOT NULL,
			phone TEXT,
			attendance TEXT,
			internal_grade TEXT
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_roll_course
			ON users (roll, course) WHERE roll <> 'GUEST'`,
		`CREATE TABLE IF NOT EXISTS chat_history (
			id SERIAL PRIMARY KEY,
			user_email TEXT,
			user_query TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS college_info (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS timetable (
			id SERIAL PRIMARY KEY,
			course TEXT NOT NULL,
			year_sem TEXT NOT NULL,
			time_slot TEXT NOT NULL,
			subject TEXT NOT NULL,
			room_no TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			marks TEXT NOT NULL,
			total_marks TEXT NOT NULL,
			semester TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS id_applications (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			full_name TEXT,
			roll_no TEXT NOT NULL,
			department TEXT NOT NULL,
			academic_year TEXT NOT NULL,
			father_name TEXT,
			mother_name TEXT,
			phone TEXT,
			gender TEXT,
			photo_path TEXT,
			signature_path TEXT,
			marksheet_path TEXT,
			status TEXT NOT NULL DEFAULT 'Pending',
			unique_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_id_applications_roll_dept_year
			ON id_applications (roll_no, department, academic_year)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
