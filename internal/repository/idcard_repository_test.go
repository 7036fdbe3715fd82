package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
)

func newIDCardMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestIDCardRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newIDCardMock(t)
	defer cleanup()
	repo := NewIDCardRepository(db)

	mock.ExpectExec("INSERT INTO id_applications").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.IDApplication{
		Email: "a@b.edu", RollNo: "20230001", Department: "CSE", AcademicYear: "2025-26",
		Status: models.StatusPending,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIDCardRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newIDCardMock(t)
	defer cleanup()
	repo := NewIDCardRepository(db)

	mock.ExpectExec("INSERT INTO id_applications").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_id_applications_roll_dept_year"})

	err := repo.Create(context.Background(), &models.IDApplication{
		Email: "a@b.edu", RollNo: "20230001", Department: "CSE", AcademicYear: "2025-26",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "You already applied for 2025-26", appErr.Message)
}

func TestIDCardRepositoryUpdateStatusApprove(t *testing.T) {
	db, mock, cleanup := newIDCardMock(t)
	defer cleanup()
	repo := NewIDCardRepository(db)

	cardID := "COE-1A2B3C"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE id_applications SET status = $1, unique_id = $2 WHERE id = $3")).
		WithArgs(models.StatusApproved, cardID, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 4, models.StatusApproved, &cardID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIDCardRepositoryFindApprovedByEmail(t *testing.T) {
	db, mock, cleanup := newIDCardMock(t)
	defer cleanup()
	repo := NewIDCardRepository(db)

	cardID := "COE-1A2B3C"
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "roll_no", "department", "academic_year",
		"father_name", "mother_name", "phone", "gender", "photo_path", "signature_path", "marksheet_path",
		"status", "unique_id", "created_at"}).
		AddRow(4, "a@b.edu", "Asha", "20230001", "CSE", "2025-26", "", "", "", "", "photo.jpg", "sign.jpg",
			"mark.pdf", models.StatusApproved, cardID, time.Now())
	mock.ExpectQuery("SELECT id, email").
		WithArgs("a@b.edu").
		WillReturnRows(rows)

	app, err := repo.FindApprovedByEmail(context.Background(), "a@b.edu")
	require.NoError(t, err)
	require.NotNil(t, app.UniqueID)
	assert.Equal(t, "COE-1A2B3C", *app.UniqueID)
}

func TestIDCardRepositoryFindApprovedByEmailNoRows(t *testing.T) {
	db, mock, cleanup := newIDCardMock(t)
	defer cleanup()
	repo := NewIDCardRepository(db)

	mock.ExpectQuery("SELECT id, email").
		WithArgs("a@b.edu").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindApprovedByEmail(context.Background(), "a@b.edu")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestIDCardRepositoryListPending(t *testing.T) {
	db, mock, cleanup := newIDCardMock(t)
	defer cleanup()
	repo := NewIDCardRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "roll_no", "department", "father_name", "mother_name",
		"photo_path", "marksheet_path", "academic_year", "phone"}).
		AddRow(1, "Asha", "20230001", "CSE", "", "", "photo.jpg", "mark.pdf", "2025-26", "")
	mock.ExpectQuery("SELECT id, COALESCE").
		WillReturnRows(rows)

	apps, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "20230001", apps[0].RollNo)
}
