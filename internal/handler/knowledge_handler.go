package handler

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/pkg/response"
)

type knowledgeService interface {
	Upload(ctx context.Context, fh *multipart.FileHeader) error
	ListDocuments(ctx context.Context) ([]models.KnowledgeDoc, error)
	Delete(ctx context.Context, id int64) error
}

// KnowledgeHandler manages the documents behind the assistant's context.
type KnowledgeHandler struct {
	service knowledgeService
}

func NewKnowledgeHandler(svc knowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{service: svc}
}

// Upload godoc
// @Summary Ingest a document into the knowledge base
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or text document"
// @Success 200 {object} map[string]interface{}
// @Router /admin/upload_knowledge [post]
func (h *KnowledgeHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, "No file part")
		return
	}

	if err := h.service.Upload(c.Request.Context(), fh); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "File processed and added to AI knowledge!")
}

// List godoc
// @Summary List ingested documents
// @Tags Admin
// @Produce json
// @Success 200 {array} models.KnowledgeDoc
// @Router /admin/get_knowledge [get]
func (h *KnowledgeHandler) List(c *gin.Context) {
	docs, err := h.service.ListDocuments(c.Request.Context())
	if err != nil {
		response.EmptyList(c)
		return
	}
	response.List(c, docs)
}

// Delete godoc
// @Summary Remove a document from the knowledge base
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.DeleteKnowledgeRequest true "Deletion payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/delete_knowledge [post]
func (h *KnowledgeHandler) Delete(c *gin.Context) {
	var req models.DeleteKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Knowledge deleted permanently!")
}
