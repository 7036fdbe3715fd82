package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campusops/coe-api/internal/models"
)

// ChatRepository persists chatbot exchanges.
type ChatRepository struct {
	db *sqlx.DB
}

// NewChatRepository creates a new instance of ChatRepository.
func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Insert appends one exchange to the history.
func (r *ChatRepository) Insert(ctx context.Context, email, query, answer string) error {
	const stmt = `INSERT INTO chat_history (user_email, user_query, bot_response) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, stmt, email, query, answer); err != nil {
		return wrapDB("insert chat history", err)
	}
	return nil
}

// HistoryByEmail returns a user's exchanges, newest first.
func (r *ChatRepository) HistoryByEmail(ctx context.Context, email string) ([]models.ChatMessage, error) {
	const query = `SELECT id, COALESCE(user_email, '') AS user_email, user_query, bot_response, created_at
		FROM chat_history WHERE user_email = $1 ORDER BY created_at DESC`
	var messages []models.ChatMessage
	if err := r.db.SelectContext(ctx, &messages, query, email); err != nil {
		return nil, wrapDB("list chat history", err)
	}
	return messages, nil
}
