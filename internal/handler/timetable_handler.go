package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/response"
)

type timetableService interface {
	Add(ctx context.Context, req models.AddTimetableRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.TimetableEntry, error)
}

// TimetableHandler serves the schedule maintained by the admin panel.
type TimetableHandler struct {
	service timetableService
}

func NewTimetableHandler(svc timetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Add godoc
// @Summary Add a timetable slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.AddTimetableRequest true "Slot payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/add_timetable [post]
func (h *TimetableHandler) Add(c *gin.Context) {
	var req models.AddTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timetable payload"))
		return
	}

	if err := h.service.Add(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary Delete a timetable slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.DeleteTimetableRequest true "Deletion payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/delete_timetable [post]
func (h *TimetableHandler) Delete(c *gin.Context) {
	var req models.DeleteTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// List godoc
// @Summary List all timetable slots
// @Tags Timetable
// @Produce json
// @Success 200 {array} models.TimetableEntry
// @Router /get_timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.EmptyList(c)
		return
	}
	response.List(c, entries)
}
