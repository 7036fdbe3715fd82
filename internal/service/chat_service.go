package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/repository"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/llm"
)

type chatKnowledgeReader interface {
	ListAll(ctx context.Context) ([]models.CollegeInfo, error)
}

type chatTimetableReader interface {
	List(ctx context.Context) ([]models.TimetableEntry, error)
}

type chatHistoryRepository interface {
	Insert(ctx context.Context, email, query, answer string) error
	HistoryByEmail(ctx context.Context, email string) ([]models.ChatMessage, error)
}

type contextCache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
}

// ChatConfig tunes the optional Redis-backed context cache.
type ChatConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// ChatService aggregates the database-derived context and forwards chat
// questions to the external model.
type ChatService struct {
	knowledge chatKnowledgeReader
	timetable chatTimetableReader
	history   chatHistoryRepository
	cache     contextCache
	client    llm.Client
	validator *validator.Validate
	logger    *zap.Logger
	config    ChatConfig
}

// NewChatService constructs a ChatService instance.
func NewChatService(knowledge chatKnowledgeReader, timetable chatTimetableReader, history chatHistoryRepository,
	cache contextCache, client llm.Client, validate *validator.Validate, logger *zap.Logger, config ChatConfig) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ChatService{
		knowledge: knowledge,
		timetable: timetable,
		history:   history,
		cache:     cache,
		client:    client,
		validator: validate,
		logger:    logger,
		config:    config,
	}
}

// BuildContext flattens the knowledge base and timetable into the text
// block supplied to the model. By default it is recomputed on every call;
// with the cache enabled the rendered block is reused until invalidated or
// expired.
func (s *ChatService) BuildContext(ctx context.Context) (string, error) {
	if s.config.CacheEnabled && s.cache != nil {
		if cached, err := s.cache.GetString(ctx, repository.ContextCacheKey); err == nil {
			return cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("context cache read failed", zap.Error(err))
		}
	}

	info, err := s.knowledge.ListAll(ctx)
	if err != nil {
		return "", err
	}
	slots, err := s.timetable.List(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("College Info:\n")
	for i, row := range info {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %s", row.Category, row.Content)
	}
	sb.WriteString("\n\nTimetable 2025-26:\n")
	for i, slot := range slots {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s %s - %s at %s in %s", slot.Course, slot.YearSem, slot.Subject, slot.TimeSlot, slot.RoomNo)
	}

	rendered := sb.String()

	if s.config.CacheEnabled && s.cache != nil {
		if err := s.cache.SetString(ctx, repository.ContextCacheKey, rendered, s.config.CacheTTL); err != nil {
			s.logger.Warn("context cache write failed", zap.Error(err))
		}
	}

	return rendered, nil
}

// Ask forwards the user's question with the aggregated context to the
// model and persists the exchange. Aggregation or API failure yields the
// generic chat error.
func (s *ChatService) Ask(ctx context.Context, req models.AskRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid chat payload")
	}

	knowledge, err := s.BuildContext(ctx)
	if err != nil {
		s.logger.Error("context aggregation failed", zap.Error(err))
		return "", appErrors.Clone(appErrors.ErrChatFailed, "")
	}

	system := "You are the COE Assistant. Context: " + knowledge
	answer, err := s.client.Complete(ctx, system, req.Message)
	if err != nil {
		s.logger.Error("chat completion failed", zap.Error(err))
		return "", appErrors.Clone(appErrors.ErrChatFailed, "")
	}

	if err := s.history.Insert(ctx, req.Email, req.Message, answer); err != nil {
		// The answer is already in hand; a history write failure should not
		// cost the user their response.
		s.logger.Warn("chat history insert failed", zap.Error(err))
	}

	return answer, nil
}

// History returns a user's exchanges in the client-facing shape, newest
// first.
func (s *ChatService) History(ctx context.Context, email string) ([]models.HistoryEntry, error) {
	messages, err := s.history.HistoryByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(messages))
	for _, msg := range messages {
		entries = append(entries, models.HistoryEntry{
			User: msg.UserQuery,
			Bot:  msg.BotResponse,
			Time: msg.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return entries, nil
}
