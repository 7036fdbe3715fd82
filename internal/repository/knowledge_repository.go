package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campusops/coe-api/internal/models"
)

// KnowledgeRepository manages college_info rows: hand-entered facts and
// text extracted from uploaded documents.
type KnowledgeRepository struct {
	db *sqlx.DB
}

// NewKnowledgeRepository creates a new instance of KnowledgeRepository.
func NewKnowledgeRepository(db *sqlx.DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// Insert appends one knowledge row.
func (r *KnowledgeRepository) Insert(ctx context.Context, category, content string) error {
	const stmt = `INSERT INTO college_info (category, content) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, stmt, category, content); err != nil {
		return wrapDB("insert college info", err)
	}
	return nil
}

// ListDocuments returns uploaded-document rows with a 100 character
// content preview, newest first.
func (r *KnowledgeRepository) ListDocuments(ctx context.Context) ([]models.KnowledgeDoc, error) {
	const query = `SELECT id, category, SUBSTRING(content FROM 1 FOR 100) AS preview
		FROM college_info WHERE category LIKE 'Document:%' ORDER BY id DESC`
	var docs []models.KnowledgeDoc
	if err := r.db.SelectContext(ctx, &docs, query); err != nil {
		return nil, wrapDB("list knowledge documents", err)
	}
	return docs, nil
}

// Delete removes a knowledge row by id.
func (r *KnowledgeRepository) Delete(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM college_info WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, stmt, id); err != nil {
		return wrapDB("delete college info", err)
	}
	return nil
}

// ListAll returns every knowledge row for the chatbot context.
func (r *KnowledgeRepository) ListAll(ctx context.Context) ([]models.CollegeInfo, error) {
	const query = `SELECT id, category, content FROM college_info`
	var rows []models.CollegeInfo
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, wrapDB("list college info", err)
	}
	return rows, nil
}
