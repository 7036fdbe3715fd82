package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/service"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/export"
	"github.com/campusops/coe-api/pkg/response"
)

type resultService interface {
	AddBulkMarks(ctx context.Context, req models.AddBulkMarksRequest) error
	GetByEmail(ctx context.Context, email string) ([]models.ResultView, error)
	GetByRoll(ctx context.Context, req models.ResultByRollRequest) (*service.ResultByRoll, error)
	Update(ctx context.Context, req models.UpdateResultRequest) error
	DeleteEntry(ctx context.Context, id int64) error
	DeleteByEmail(ctx context.Context, email string) error
	ClearAll(ctx context.Context) error
	Import(ctx context.Context, r io.Reader, filename string) (int, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// ResultHandler serves exam result entry, lookup and bulk import.
type ResultHandler struct {
	service resultService
}

func NewResultHandler(svc resultService) *ResultHandler {
	return &ResultHandler{service: svc}
}

// AddBulkMarks godoc
// @Summary Record multiple marks for one student
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.AddBulkMarksRequest true "Marks payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/add_bulk_marks [post]
func (h *ResultHandler) AddBulkMarks(c *gin.Context) {
	var req models.AddBulkMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid marks payload"))
		return
	}

	if err := h.service.AddBulkMarks(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// GetResult godoc
// @Summary Fetch a student's results by email
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body models.GetResultRequest true "Lookup payload"
// @Success 200 {object} map[string]interface{}
// @Router /get_result [post]
func (h *ResultHandler) GetResult(c *gin.Context) {
	var req models.GetResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "email is required")
		return
	}

	results, err := h.service.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"results": results})
}

// GetResultByRoll godoc
// @Summary Look up results by roll number
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.ResultByRollRequest true "Lookup payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/get_result_by_roll [post]
func (h *ResultHandler) GetResultByRoll(c *gin.Context) {
	var req models.ResultByRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "roll is required")
		return
	}

	found, err := h.service.GetByRoll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"results": found.Results,
		"name":    found.Name,
		"email":   found.Email,
		"course":  found.Course,
	})
}

// UpdateResult godoc
// @Summary Update one result row
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.UpdateResultRequest true "Update payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/update_result [post]
func (h *ResultHandler) UpdateResult(c *gin.Context) {
	var req models.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Marks updated successfully")
}

// DeleteResultEntry godoc
// @Summary Delete one result row
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.DeleteResultEntryRequest true "Deletion payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/delete_result_entry [post]
func (h *ResultHandler) DeleteResultEntry(c *gin.Context) {
	var req models.DeleteResultEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Entry deleted")
}

// DeleteAllMarks godoc
// @Summary Delete all marks for one student
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.DeleteAllMarksRequest true "Deletion payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/delete_all_marks [post]
func (h *ResultHandler) DeleteAllMarks(c *gin.Context) {
	var req models.DeleteAllMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.DeleteByEmail(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportBulkMarks godoc
// @Summary Import marks from a CSV or Excel sheet
// @Description Matches rows to students by roll number
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet with ROLL_NO, SUBJECT, MARKS, TOTAL_MARKS"
// @Success 200 {object} map[string]interface{}
// @Router /admin/import_bulk_marks [post]
func (h *ResultHandler) ImportBulkMarks(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, "No file part")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Fail(c, fmt.Sprintf("Read Error: %v", err))
		return
	}
	defer f.Close()

	count, err := h.service.Import(c.Request.Context(), f, fh.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"count": count})
}

// ClearAllResults godoc
// @Summary Delete every stored result
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/clear_all_results_database [post]
func (h *ResultHandler) ClearAllResults(c *gin.Context) {
	if err := h.service.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "All marks deleted successfully")
}

// ExportResultsCSV godoc
// @Summary Download every stored result as CSV
// @Tags Admin
// @Produce text/csv
// @Success 200 {file} file
// @Router /admin/export_results_csv [get]
func (h *ResultHandler) ExportResultsCSV(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := export.Filename("results", time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
