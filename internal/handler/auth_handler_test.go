package handler

import (
	"bytes"
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

type authServiceMock struct {
	registerResp *models.RegisterResponse
	registerErr  error
	loginResp    *models.LoginResponse
	loginErr     error
	password     string
	passwordErr  error
	email        string
	emailErr     error
}

func (m *authServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	return m.registerResp, m.registerErr
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *authServiceMock) ForgotPassword(ctx context.Context, email string) (string, error) {
	return m.password, m.passwordErr
}

func (m *authServiceMock) ForgotUserID(ctx context.Context, req models.ForgotUserIDRequest) (string, error) {
	return m.email, m.emailErr
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handler(c)
	return w
}

func TestAuthHandlerRegisterReturnsCredentials(t *testing.T) {
	mock := &authServiceMock{registerResp: &models.RegisterResponse{
		Success: true, UserID: "a@b.edu", Password: "20000101",
	}}
	handler := NewAuthHandler(mock)

	w := postJSON(t, handler.Register, "/register", models.RegisterRequest{
		Email: "a@b.edu", Roll: "20230001", Course: "CSE", DOB: "2000-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "a@b.edu", body["userId"])
	assert.Equal(t, "20000101", body["password"])
}

func TestAuthHandlerRegisterShortRoll(t *testing.T) {
	mock := &authServiceMock{registerErr: service.ErrShortRoll}
	handler := NewAuthHandler(mock)

	w := postJSON(t, handler.Register, "/register", models.RegisterRequest{
		Email: "a@b.edu", Roll: "123", Course: "CSE",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid Roll Number! Minimum 8 digits required.", body["message"])
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	mock := &authServiceMock{loginErr: service.ErrInvalidLogin}
	handler := NewAuthHandler(mock)

	w := postJSON(t, handler.Login, "/login", models.LoginRequest{UserID: "a@b.edu", Password: "wrong"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid Email or Password!", body["message"])
}

func TestAuthHandlerLoginAdmin(t *testing.T) {
	mock := &authServiceMock{loginResp: &models.LoginResponse{Success: true, UserName: "Administrator", IsAdmin: true}}
	handler := NewAuthHandler(mock)

	w := postJSON(t, handler.Login, "/login", models.LoginRequest{UserID: "admin@coe.edu", Password: "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["isAdmin"])
	assert.Equal(t, "Administrator", body["userName"])
}

func TestAuthHandlerForgotPassword(t *testing.T) {
	mock := &authServiceMock{password: "20000101"}
	handler := NewAuthHandler(mock)

	w := postJSON(t, handler.ForgotPassword, "/forgot_password", models.ForgotPasswordRequest{Email: "a@b.edu"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "20000101", body["password"])
}
