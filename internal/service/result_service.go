package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/export"
	"github.com/campusops/coe-api/pkg/ingest"
)

// Spreadsheet columns required by the bulk import.
var requiredImportColumns = []string{"ROLL_NO", "SUBJECT", "MARKS", "TOTAL_MARKS"}

var (
	ErrStudentNotFound = appErrors.New("STUDENT_NOT_FOUND", http.StatusOK, "Student not found!")
	ErrMarksUserMissed = appErrors.New("USER_NOT_FOUND", http.StatusOK, "User not found!")
	ErrNoResults       = appErrors.New("NO_RESULTS", http.StatusOK, "No results found.")
)

type resultRepository interface {
	InsertMany(ctx context.Context, email string, entries []models.MarkEntry) error
	Insert(ctx context.Context, result models.Result) error
	ListByEmail(ctx context.Context, email string) ([]models.ResultView, error)
	ListByEmailWithID(ctx context.Context, email string) ([]models.AdminResultView, error)
	Update(ctx context.Context, id int64, marks, total string) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteAll(ctx context.Context) error
	ListAll(ctx context.Context) ([]models.Result, error)
}

type resultUserReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRoll(ctx context.Context, roll, nameFilter, courseFilter string) (*models.User, error)
	FindEmailByRoll(ctx context.Context, roll string) (string, error)
}

type importNoteWriter interface {
	Insert(ctx context.Context, category, content string) error
}

// ResultByRoll bundles a located student with their mark rows.
type ResultByRoll struct {
	Results []models.AdminResultView
	Name    string
	Email   string
	Course  string
}

// ResultService manages exam marks including the spreadsheet bulk import.
type ResultService struct {
	repo      resultRepository
	users     resultUserReader
	notes     importNoteWriter
	csv       *export.CSVExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResultService constructs a ResultService instance.
func NewResultService(repo resultRepository, users resultUserReader, notes importNoteWriter,
	validate *validator.Validate, logger *zap.Logger) *ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ResultService{
		repo:      repo,
		users:     users,
		notes:     notes,
		csv:       export.NewCSVExporter(),
		validator: validate,
		logger:    logger,
	}
}

// AddBulkMarks inserts several mark rows for one existing user.
func (s *ResultService) AddBulkMarks(ctx context.Context, req models.AddBulkMarksRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marks payload")
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMarksUserMissed
		}
		return err
	}

	return s.repo.InsertMany(ctx, req.Email, req.Results)
}

// GetByEmail returns a user's marks, or a no-results failure when empty.
func (s *ResultService) GetByEmail(ctx context.Context, email string) ([]models.ResultView, error) {
	if email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email is required")
	}

	results, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

// GetByRoll locates a student by roll (optionally filtered by name and
// course) and returns their marks with row ids.
func (s *ResultService) GetByRoll(ctx context.Context, req models.ResultByRollRequest) (*ResultByRoll, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lookup payload")
	}

	user, err := s.users.FindByRoll(ctx, req.Roll, strings.TrimSpace(req.Name), strings.TrimSpace(req.Course))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	results, err := s.repo.ListByEmailWithID(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	return &ResultByRoll{Results: results, Name: user.Name, Email: user.Email, Course: user.Course}, nil
}

// Update edits one mark row.
func (s *ResultService) Update(ctx context.Context, req models.UpdateResultRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update payload")
	}
	return s.repo.Update(ctx, req.ID, req.Marks.String(), req.Total.String())
}

// DeleteEntry removes one mark row.
func (s *ResultService) DeleteEntry(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// DeleteByEmail removes every mark row for one user.
func (s *ResultService) DeleteByEmail(ctx context.Context, email string) error {
	if email == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Email is required")
	}
	return s.repo.DeleteByEmail(ctx, email)
}

// ClearAll wipes the results table.
func (s *ResultService) ClearAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// Import reads a CSV or Excel upload and inserts one mark row per
// spreadsheet row whose roll number matches a registered user. Unmatched
// rolls are skipped; the returned count is the number of matched rows. A
// summary note is recorded in the knowledge base.
func (s *ResultService) Import(ctx context.Context, r io.Reader, filename string) (int, error) {
	table, err := ingest.Parse(r, filename)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusOK, fmt.Sprintf("Read Error: %v", err))
	}

	if !table.HasColumns(requiredImportColumns...) {
		return 0, appErrors.New("COLUMNS_MISSING", http.StatusOK,
			fmt.Sprintf("Columns missing! Headers must be: %s", strings.Join(requiredImportColumns, ", ")))
	}

	count := 0
	for _, row := range table.Rows {
		roll := normalizeRoll(row["ROLL_NO"])
		if roll == "" {
			continue
		}

		email, err := s.users.FindEmailByRoll(ctx, roll)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return count, err
		}

		semester := row["SEMESTER"]
		if semester == "" {
			semester = "N/A"
		}

		result := models.Result{
			Email:      email,
			Subject:    row["SUBJECT"],
			Marks:      row["MARKS"],
			TotalMarks: row["TOTAL_MARKS"],
			Semester:   semester,
		}
		if err := s.repo.Insert(ctx, result); err != nil {
			return count, err
		}
		count++
	}

	note := fmt.Sprintf("Bulk marks imported for %d students.", count)
	if err := s.notes.Insert(ctx, models.DocumentCategoryPrefix+filename, note); err != nil {
		return count, err
	}

	s.logger.Info("bulk marks imported", zap.String("file", filename), zap.Int("count", count))
	return count, nil
}

// ExportCSV renders every mark row as a CSV attachment body.
func (s *ResultService) ExportCSV(ctx context.Context) ([]byte, error) {
	results, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "EMAIL", "SUBJECT", "MARKS", "TOTAL_MARKS", "SEMESTER"},
	}
	for _, r := range results {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":          strconv.FormatInt(r.ID, 10),
			"EMAIL":       r.Email,
			"SUBJECT":     r.Subject,
			"MARKS":       r.Marks,
			"TOTAL_MARKS": r.TotalMarks,
			"SEMESTER":    r.Semester,
		})
	}
	return s.csv.Render(dataset)
}

// normalizeRoll strips the trailing ".0" artifact spreadsheets attach to
// numeric roll numbers.
func normalizeRoll(raw string) string {
	roll := strings.TrimSpace(raw)
	if idx := strings.Index(roll, "."); idx >= 0 {
		roll = roll[:idx]
	}
	return roll
}
