package handler

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/service"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/response"
)

type idCardService interface {
	Apply(ctx context.Context, req models.ApplyIDRequest, photo, sign, marksheet *multipart.FileHeader) error
	ListPending(ctx context.Context) ([]models.PendingApplication, error)
	UpdateStatus(ctx context.Context, req models.UpdateIDStatusRequest) error
	GetVerified(ctx context.Context, email string) (*models.IDApplication, error)
	FullEdit(ctx context.Context, req models.FullEditIDRequest, photo, marksheet *multipart.FileHeader) error
	ListApproved(ctx context.Context) ([]models.IDApplication, error)
	ListByEmail(ctx context.Context, email string) ([]models.IDApplication, error)
	RenderCardPDF(ctx context.Context, email string) ([]byte, error)
}

// IDCardHandler drives the ID card application workflow.
type IDCardHandler struct {
	service idCardService
}

func NewIDCardHandler(svc idCardService) *IDCardHandler {
	return &IDCardHandler{service: svc}
}

// Apply godoc
// @Summary Submit an ID card application
// @Description Requires photo, signature and marksheet uploads
// @Tags IDCard
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /apply_id [post]
func (h *IDCardHandler) Apply(c *gin.Context) {
	var req models.ApplyIDRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid application payload"))
		return
	}

	photo, _ := c.FormFile("photo")
	sign, _ := c.FormFile("sign")
	marksheet, _ := c.FormFile("marksheet")

	if err := h.service.Apply(c.Request.Context(), req, photo, sign, marksheet); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Application successfully submitted!")
}

// ListPending godoc
// @Summary List applications awaiting review
// @Tags Admin
// @Produce json
// @Success 200 {array} models.PendingApplication
// @Router /admin/get_pending_id_apps [get]
func (h *IDCardHandler) ListPending(c *gin.Context) {
	apps, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.EmptyList(c)
		return
	}
	response.List(c, apps)
}

// UpdateStatus godoc
// @Summary Approve or reject an application
// @Description Approval mints a unique card identifier
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.UpdateIDStatusRequest true "Status payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/update_id_status [post]
func (h *IDCardHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateIDStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// GetVerified godoc
// @Summary Fetch a student's approved ID card
// @Tags IDCard
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} models.IDApplication
// @Router /api/get_verified_id [get]
func (h *IDCardHandler) GetVerified(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Fail(c, "email is required")
		return
	}

	app, err := h.service.GetVerified(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, struct {
		models.IDApplication
		Success bool `json:"success"`
	}{*app, true})
}

// GetVerifiedPDF godoc
// @Summary Download an approved ID card as PDF
// @Tags IDCard
// @Produce application/pdf
// @Param email query string true "Account email"
// @Success 200 {file} file
// @Router /api/get_verified_id_pdf [get]
func (h *IDCardHandler) GetVerifiedPDF(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Fail(c, "email is required")
		return
	}

	data, err := h.service.RenderCardPDF(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrNoApprovedID) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": service.ErrNoApprovedID.Message})
			return
		}
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("id_card_%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// FullEdit godoc
// @Summary Edit an application, optionally replacing its files
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/full_edit_id_app [post]
func (h *IDCardHandler) FullEdit(c *gin.Context) {
	var req models.FullEditIDRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid edit payload"))
		return
	}

	photo, _ := c.FormFile("photo")
	marksheet, _ := c.FormFile("marksheet")

	if err := h.service.FullEdit(c.Request.Context(), req, photo, marksheet); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// ListApproved godoc
// @Summary List all students holding approved cards
// @Tags Admin
// @Produce json
// @Success 200 {array} models.IDApplication
// @Router /admin/get_verified_students [get]
func (h *IDCardHandler) ListApproved(c *gin.Context) {
	apps, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.List(c, apps)
}

// ListByEmail godoc
// @Summary List every card issued to one account
// @Tags IDCard
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} map[string]interface{}
// @Router /api/get_all_ids [get]
func (h *IDCardHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Fail(c, "email is required")
		return
	}

	cards, err := h.service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cards == nil {
		cards = []models.IDApplication{}
	}

	response.OK(c, gin.H{"cards": cards})
}
