package service

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/repository"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/extract"
	"github.com/campusops/coe-api/pkg/storage"
)

type knowledgeRepository interface {
	Insert(ctx context.Context, category, content string) error
	ListDocuments(ctx context.Context) ([]models.KnowledgeDoc, error)
	Delete(ctx context.Context, id int64) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string)
}

// KnowledgeService ingests uploaded documents into the chatbot knowledge
// base.
type KnowledgeService struct {
	repo    knowledgeRepository
	storage *storage.LocalStorage
	cache   cacheInvalidator
	logger  *zap.Logger
}

// NewKnowledgeService constructs a KnowledgeService instance.
func NewKnowledgeService(repo knowledgeRepository, store *storage.LocalStorage, cache cacheInvalidator, logger *zap.Logger) *KnowledgeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KnowledgeService{repo: repo, storage: store, cache: cache, logger: logger}
}

// Upload saves the file, extracts its text (PDF page by page, otherwise
// UTF-8) and records it as a Document row.
func (s *KnowledgeService) Upload(ctx context.Context, fh *multipart.FileHeader) error {
	if fh == nil || fh.Filename == "" {
		return appErrors.Clone(appErrors.ErrValidation, "No selected file")
	}

	name, err := s.storage.SaveUpload(fh, fh.Filename)
	if err != nil {
		return err
	}

	text, err := extract.Text(s.storage.Path(name))
	if err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, models.DocumentCategoryPrefix+name, text); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, repository.ContextCacheKey)
	}

	s.logger.Info("knowledge document ingested", zap.String("file", name), zap.Int("chars", len(text)))
	return nil
}

// ListDocuments returns the uploaded documents with content previews.
func (s *KnowledgeService) ListDocuments(ctx context.Context) ([]models.KnowledgeDoc, error) {
	return s.repo.ListDocuments(ctx)
}

// Delete removes a knowledge row permanently.
func (s *KnowledgeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, repository.ContextCacheKey)
	}
	return nil
}
