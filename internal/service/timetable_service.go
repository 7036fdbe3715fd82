package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/repository"
	appErrors "github.com/campusops/coe-api/pkg/errors"
)

type timetableRepository interface {
	Insert(ctx context.Context, req models.AddTimetableRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.TimetableEntry, error)
}

// TimetableService manages timetable slots. Writes invalidate the chatbot
// context cache since the timetable feeds the aggregated context.
type TimetableService struct {
	repo      timetableRepository
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService constructs a TimetableService instance.
func NewTimetableService(repo timetableRepository, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TimetableService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Add inserts a new slot.
func (s *TimetableService) Add(ctx context.Context, req models.AddTimetableRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	if err := s.repo.Insert(ctx, req); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, repository.ContextCacheKey)
	}
	return nil
}

// Delete removes a slot.
func (s *TimetableService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, repository.ContextCacheKey)
	}
	return nil
}

// List returns every slot.
func (s *TimetableService) List(ctx context.Context) ([]models.TimetableEntry, error) {
	return s.repo.List(ctx)
}
