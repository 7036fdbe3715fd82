package models

// DocumentCategoryPrefix marks college_info rows whose content was
// extracted from an uploaded document.
const DocumentCategoryPrefix = "Document: "

// CollegeInfo is one knowledge-base fact or extracted document.
type CollegeInfo struct {
	ID       int64  `db:"id" json:"id"`
	Category string `db:"category" json:"category"`
	Content  string `db:"content" json:"content"`
}

// KnowledgeDoc is the admin listing view of an uploaded document with a
// truncated content preview.
type KnowledgeDoc struct {
	ID       int64  `db:"id" json:"id"`
	Category string `db:"category" json:"category"`
	Preview  string `db:"preview" json:"preview"`
}

// DeleteKnowledgeRequest removes a knowledge row by id.
type DeleteKnowledgeRequest struct {
	ID int64 `json:"id" validate:"required"`
}
