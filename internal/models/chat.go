package models

import "time"

// ChatMessage is one persisted question/answer exchange. Rows are append
// only and never mutated.
type ChatMessage struct {
	ID          int64     `db:"id" json:"id"`
	UserEmail   string    `db:"user_email" json:"user_email"`
	UserQuery   string    `db:"user_query" json:"user_query"`
	BotResponse string    `db:"bot_response" json:"bot_response"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AskRequest is the payload for POST /ask.
type AskRequest struct {
	Message string `json:"message" validate:"required"`
	Email   string `json:"email"`
}

// HistoryRequest identifies whose chat history to fetch.
type HistoryRequest struct {
	Email string `json:"email" validate:"required"`
}

// HistoryEntry is the client-facing shape of a chat exchange.
type HistoryEntry struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
	Time string `json:"time"`
}
