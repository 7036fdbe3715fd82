package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
)

func newResultMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestResultRepositoryInsertMany(t *testing.T) {
	db, mock, cleanup := newResultMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectBegin()
	stmt := regexp.QuoteMeta("INSERT INTO results (email, subject, marks, total_marks) VALUES ($1, $2, $3, $4)")
	mock.ExpectExec(stmt).
		WithArgs("a@b.edu", "Math", "88", "100").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(stmt).
		WithArgs("a@b.edu", "Physics", "74", "100").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.InsertMany(context.Background(), "a@b.edu", []models.MarkEntry{
		{Subject: "Math", Marks: json.Number("88"), Total: json.Number("100")},
		{Subject: "Physics", Marks: json.Number("74"), Total: json.Number("100")},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryInsertManyRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newResultMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO results").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.InsertMany(context.Background(), "a@b.edu", []models.MarkEntry{
		{Subject: "Math", Marks: json.Number("88"), Total: json.Number("100")},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryListByEmail(t *testing.T) {
	db, mock, cleanup := newResultMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"subject", "marks", "total_marks"}).
		AddRow("Math", "88", "100")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT subject, marks, total_marks FROM results WHERE email = $1")).
		WithArgs("a@b.edu").
		WillReturnRows(rows)

	results, err := repo.ListByEmail(context.Background(), "a@b.edu")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Math", results[0].Subject)
}

func TestResultRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newResultMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE results SET marks = $1, total_marks = $2 WHERE id = $3")).
		WithArgs("91", "100", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 7, "91", "100"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryDeleteAll(t *testing.T) {
	db, mock, cleanup := newResultMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectExec("DELETE FROM results").
		WillReturnResult(sqlmock.NewResult(0, 12))

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newResultMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "subject", "marks", "total_marks", "semester"}).
		AddRow(1, "a@b.edu", "Math", "88", "100", "N/A").
		AddRow(2, "a@b.edu", "Physics", "74", "100", "")
	mock.ExpectQuery("SELECT id, email, subject, marks, total_marks").
		WillReturnRows(rows)

	results, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "N/A", results[0].Semester)
}
