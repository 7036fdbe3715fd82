package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/service"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/response"
)

type userService interface {
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error
	List(ctx context.Context) ([]models.AdminUser, error)
	UpdateAttendance(ctx context.Context, req models.UpdateAttendanceRequest) error
	Delete(ctx context.Context, email string) error
}

// UserHandler serves the profile endpoints and the admin user roster.
type UserHandler struct {
	service userService
}

func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// GetProfile godoc
// @Summary Fetch a student profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body models.ProfileRequest true "Profile lookup"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Router /get_profile [post]
func (h *UserHandler) GetProfile(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update mutable profile fields
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body models.UpdateProfileRequest true "Profile update"
// @Success 200 {object} map[string]interface{}
// @Router /update_profile [post]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Profile updated successfully!")
}

// ListUsers godoc
// @Summary List all registered users
// @Tags Admin
// @Produce json
// @Success 200 {array} models.AdminUser
// @Router /admin/get_users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.EmptyList(c)
		return
	}
	response.List(c, users)
}

// UpdateAttendance godoc
// @Summary Update attendance and grade for a user
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.UpdateAttendanceRequest true "Attendance update"
// @Success 200 {object} map[string]interface{}
// @Router /admin/update_attendance [post]
func (h *UserHandler) UpdateAttendance(c *gin.Context) {
	var req models.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid attendance payload")
		return
	}

	if err := h.service.UpdateAttendance(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Records updated successfully!")
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.DeleteUserRequest true "Deletion payload"
// @Success 200 {object} map[string]interface{}
// @Router /admin/delete_user [post]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req models.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "invalid payload")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "User deleted successfully")
}
