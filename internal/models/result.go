package models

import "encoding/json"

// Result is one exam mark entry. Duplicate rows per (email, subject) are
// permitted, so repeated bulk imports accumulate.
type Result struct {
	ID         int64  `db:"id" json:"id"`
	Email      string `db:"email" json:"email"`
	Subject    string `db:"subject" json:"subject"`
	Marks      string `db:"marks" json:"marks"`
	TotalMarks string `db:"total_marks" json:"total_marks"`
	Semester   string `db:"semester" json:"semester"`
}

// ResultView is the student-facing mark row.
type ResultView struct {
	Subject    string `db:"subject" json:"subject"`
	Marks      string `db:"marks" json:"marks"`
	TotalMarks string `db:"total_marks" json:"total_marks"`
}

// AdminResultView includes the row id for editing.
type AdminResultView struct {
	ID         int64  `db:"id" json:"id"`
	Subject    string `db:"subject" json:"subject"`
	Marks      string `db:"marks" json:"marks"`
	TotalMarks string `db:"total_marks" json:"total_marks"`
}

// MarkEntry is one subject entry in a manual bulk insert.
type MarkEntry struct {
	Subject string      `json:"subject" validate:"required"`
	Marks   json.Number `json:"marks" validate:"required"`
	Total   json.Number `json:"total" validate:"required"`
}

// AddBulkMarksRequest inserts several mark rows for one user.
type AddBulkMarksRequest struct {
	Email   string      `json:"email" validate:"required"`
	Results []MarkEntry `json:"results" validate:"required,min=1,dive"`
}

// GetResultRequest fetches marks for a user.
type GetResultRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResultByRollRequest locates a student and their marks by roll number with
// optional name and course filters.
type ResultByRollRequest struct {
	Roll   string `json:"roll" validate:"required"`
	Name   string `json:"name"`
	Course string `json:"course"`
}

// UpdateResultRequest edits one mark row.
type UpdateResultRequest struct {
	ID    int64       `json:"id" validate:"required"`
	Marks json.Number `json:"marks" validate:"required"`
	Total json.Number `json:"total" validate:"required"`
}

// DeleteResultEntryRequest removes one mark row.
type DeleteResultEntryRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// DeleteAllMarksRequest removes every mark row for a user.
type DeleteAllMarksRequest struct {
	Email string `json:"email" validate:"required"`
}
