package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/export"
	"github.com/campusops/coe-api/pkg/storage"
)

var (
	ErrShortApplicationRoll = appErrors.New("INVALID_ROLL", http.StatusBadRequest, "Roll Number is Minimum 8 digits!")
	ErrMissingFiles         = appErrors.New("MISSING_FILES", http.StatusBadRequest, "Photo, signature and marksheet are required!")
	ErrNoApprovedID         = appErrors.New("ID_NOT_APPROVED", http.StatusOK, "ID not approved or found")
)

type idCardRepository interface {
	Create(ctx context.Context, app *models.IDApplication) error
	ListPending(ctx context.Context) ([]models.PendingApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string, uniqueID *string) error
	FindApprovedByEmail(ctx context.Context, email string) (*models.IDApplication, error)
	Update(ctx context.Context, req models.FullEditIDRequest) error
	UpdatePhotoPath(ctx context.Context, id int64, path string) error
	UpdateMarksheetPath(ctx context.Context, id int64, path string) error
	ListApproved(ctx context.Context) ([]models.IDApplication, error)
	ListByEmail(ctx context.Context, email string) ([]models.IDApplication, error)
}

// IDCardService runs the identity-card application workflow.
type IDCardService struct {
	repo        idCardRepository
	storage     *storage.LocalStorage
	card        *export.IDCardExporter
	collegeName string
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewIDCardService constructs an IDCardService instance.
func NewIDCardService(repo idCardRepository, store *storage.LocalStorage, validate *validator.Validate, logger *zap.Logger) *IDCardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &IDCardService{
		repo:        repo,
		storage:     store,
		card:        export.NewIDCardExporter(),
		collegeName: "College of Engineering",
		validator:   validate,
		logger:      logger,
	}
}

// Apply stores the submitted documents and inserts a Pending application.
// A duplicate (roll, department, year) triple is rejected atomically by the
// repository.
func (s *IDCardService) Apply(ctx context.Context, req models.ApplyIDRequest, photo, sign, marksheet *multipart.FileHeader) error {
	req.RollNo = strings.TrimSpace(req.RollNo)

	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}
	if len(req.RollNo) < models.MinRollLength {
		return ErrShortApplicationRoll
	}
	if photo == nil || sign == nil || marksheet == nil {
		return ErrMissingFiles
	}

	photoName, err := s.storage.SaveUpload(photo, fmt.Sprintf("photo_%s_%s", req.RollNo, photo.Filename))
	if err != nil {
		return err
	}
	signName, err := s.storage.SaveUpload(sign, fmt.Sprintf("sign_%s_%s", req.RollNo, sign.Filename))
	if err != nil {
		return err
	}
	markName, err := s.storage.SaveUpload(marksheet, fmt.Sprintf("mark_%s_%s", req.RollNo, marksheet.Filename))
	if err != nil {
		return err
	}

	app := &models.IDApplication{
		Email:         req.Email,
		FullName:      req.FullName,
		RollNo:        req.RollNo,
		Department:    req.Department,
		AcademicYear:  req.AcademicYear,
		FatherName:    req.FatherName,
		MotherName:    req.MotherName,
		Phone:         req.Phone,
		Gender:        req.Gender,
		PhotoPath:     photoName,
		SignaturePath: signName,
		MarksheetPath: markName,
		Status:        models.StatusPending,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return err
	}

	s.logger.Info("id application submitted",
		zap.String("roll", req.RollNo), zap.String("department", req.Department), zap.String("year", req.AcademicYear))
	return nil
}

// ListPending returns applications awaiting review.
func (s *IDCardService) ListPending(ctx context.Context) ([]models.PendingApplication, error) {
	return s.repo.ListPending(ctx)
}

// UpdateStatus moves an application through its lifecycle. Transitioning
// to Approved issues a fresh card identifier; any other target status
// clears it.
func (s *IDCardService) UpdateStatus(ctx context.Context, req models.UpdateIDStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}

	var uniqueID *string
	if req.Status == models.StatusApproved {
		id := NewCardID()
		uniqueID = &id
	}

	return s.repo.UpdateStatus(ctx, req.ID, req.Status, uniqueID)
}

// GetVerified returns the approved application for an email.
func (s *IDCardService) GetVerified(ctx context.Context, email string) (*models.IDApplication, error) {
	if email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email required")
	}

	app, err := s.repo.FindApprovedByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoApprovedID
		}
		return nil, err
	}
	return app, nil
}

// FullEdit overwrites the editable fields and optionally replaces the
// photo and marksheet files. Status and issued identifier are untouched.
func (s *IDCardService) FullEdit(ctx context.Context, req models.FullEditIDRequest, photo, marksheet *multipart.FileHeader) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid edit payload")
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return err
	}

	if photo != nil {
		name, err := s.storage.SaveUpload(photo, fmt.Sprintf("photo_revised_%s_%s", req.RollNo, photo.Filename))
		if err != nil {
			return err
		}
		if err := s.repo.UpdatePhotoPath(ctx, req.ID, name); err != nil {
			return err
		}
	}

	if marksheet != nil {
		name, err := s.storage.SaveUpload(marksheet, fmt.Sprintf("mark_revised_%s_%s", req.RollNo, marksheet.Filename))
		if err != nil {
			return err
		}
		if err := s.repo.UpdateMarksheetPath(ctx, req.ID, name); err != nil {
			return err
		}
	}

	return nil
}

// ListApproved returns approved applications, newest first.
func (s *IDCardService) ListApproved(ctx context.Context) ([]models.IDApplication, error) {
	return s.repo.ListApproved(ctx)
}

// ListByEmail returns every application an email has submitted.
func (s *IDCardService) ListByEmail(ctx context.Context, email string) ([]models.IDApplication, error) {
	return s.repo.ListByEmail(ctx, email)
}

// RenderCardPDF renders the approved application for an email as a
// printable identity card.
func (s *IDCardService) RenderCardPDF(ctx context.Context, email string) ([]byte, error) {
	app, err := s.GetVerified(ctx, email)
	if err != nil {
		return nil, err
	}

	var uniqueID string
	if app.UniqueID != nil {
		uniqueID = *app.UniqueID
	}

	card := export.IDCard{
		CollegeName:  s.collegeName,
		UniqueID:     uniqueID,
		FullName:     app.FullName,
		RollNo:       app.RollNo,
		Department:   app.Department,
		AcademicYear: app.AcademicYear,
		Phone:        app.Phone,
	}
	if app.PhotoPath != "" {
		card.PhotoPath = s.storage.Path(app.PhotoPath)
	}

	return s.card.Render(card)
}

// NewCardID issues a card identifier: the fixed prefix followed by six
// uppercase hexadecimal characters.
func NewCardID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return models.UniqueIDPrefix + strings.ToUpper(raw[:6])
}
