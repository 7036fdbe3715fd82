package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/service"
)

type userServiceMock struct {
	profile    *models.Profile
	profileErr error
	updateErr  error
	users      []models.AdminUser
	listErr    error
}

func (m *userServiceMock) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	return m.profile, m.profileErr
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	return m.updateErr
}

func (m *userServiceMock) List(ctx context.Context) ([]models.AdminUser, error) {
	return m.users, m.listErr
}

func (m *userServiceMock) UpdateAttendance(ctx context.Context, req models.UpdateAttendanceRequest) error {
	return nil
}

func (m *userServiceMock) Delete(ctx context.Context, email string) error {
	return nil
}

func TestUserHandlerGetProfileNotFound(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{profileErr: service.ErrUserNotFound})

	w := postJSON(t, handler.GetProfile, "/get_profile", models.ProfileRequest{Email: "missing@b.edu"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["error"])
}

func TestUserHandlerGetProfile(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{profile: &models.Profile{
		Name: "Asha", Roll: "20230001", Course: "CSE",
	}})

	w := postJSON(t, handler.GetProfile, "/get_profile", models.ProfileRequest{Email: "a@b.edu"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Asha", body["name"])
}

func TestUserHandlerUpdateProfileUnchanged(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{updateErr: service.ErrProfileUnchanged})

	w := postJSON(t, handler.UpdateProfile, "/update_profile", models.UpdateProfileRequest{
		Email: "a@b.edu", Name: "Asha", Roll: "20230001", Course: "CSE",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found or no changes made.", body["message"])
}

func TestUserHandlerListUsersFallsBackToEmptyList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(&userServiceMock{listErr: assert.AnError})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/admin/get_users", nil)
	handler.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
