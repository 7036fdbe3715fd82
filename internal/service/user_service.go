package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
)

// ErrUserNotFound is returned by profile reads for unknown emails.
var ErrUserNotFound = appErrors.Clone(appErrors.ErrNotFound, "User not found")

// ErrProfileUnchanged reports an update that touched no row.
var ErrProfileUnchanged = appErrors.New("PROFILE_UNCHANGED", http.StatusOK, "User not found or no changes made.")

type userRepository interface {
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (int64, error)
	List(ctx context.Context) ([]models.AdminUser, error)
	UpdateAttendance(ctx context.Context, email, attendance, grade string) error
	Delete(ctx context.Context, email string) error
}

// UserService covers profile reads/updates and the admin roster
// operations.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// GetProfile returns the student-visible profile for an email.
func (s *UserService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	if email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email is required!")
	}

	profile, err := s.repo.GetProfile(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile overwrites the mutable profile fields, reporting whether
// any row actually changed.
func (s *UserService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Email is required!")
	}

	affected, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileUnchanged
	}
	return nil
}

// List returns the full admin roster.
func (s *UserService) List(ctx context.Context) ([]models.AdminUser, error) {
	return s.repo.List(ctx)
}

// UpdateAttendance sets attendance and internal grade for a user.
func (s *UserService) UpdateAttendance(ctx context.Context, req models.UpdateAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	return s.repo.UpdateAttendance(ctx, req.Email, req.Attendance.String(), req.Grade.String())
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, email string) error {
	if email == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Email is required!")
	}

	if err := s.repo.Delete(ctx, email); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("email", email))
	return nil
}
