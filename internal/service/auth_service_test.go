package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/pkg/config"
)

type authRepoMock struct {
	created    *models.User
	createErr  error
	byCreds    *models.User
	byCredsErr error
	byEmail    *models.User
	byEmailErr error
	identity   string
	identErr   error
}

func (m *authRepoMock) Create(ctx context.Context, user *models.User) error {
	m.created = user
	return m.createErr
}

func (m *authRepoMock) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	return m.byCreds, m.byCredsErr
}

func (m *authRepoMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.byEmail, m.byEmailErr
}

func (m *authRepoMock) FindEmailByIdentity(ctx context.Context, name, roll, course string) (string, error) {
	return m.identity, m.identErr
}

func TestDerivePassword(t *testing.T) {
	assert.Equal(t, "20000101", DerivePassword("2000-01-01"))
	assert.Equal(t, "19991231", DerivePassword("1999/12/31"))
	assert.Equal(t, FallbackPassword, DerivePassword(""))
	assert.Equal(t, FallbackPassword, DerivePassword("unknown"))
}

func TestAuthServiceRegisterIssuesDOBPassword(t *testing.T) {
	repo := &authRepoMock{}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@b.edu", Roll: "20230001", Course: "CSE", Name: "Asha", DOB: "2000-01-01",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "a@b.edu", res.UserID)
	assert.Equal(t, "20000101", res.Password)
	require.NotNil(t, repo.created)
	assert.Equal(t, "20000101", repo.created.Password)
}

func TestAuthServiceRegisterRejectsShortRollBeforeInsert(t *testing.T) {
	repo := &authRepoMock{}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@b.edu", Roll: "1234567", Course: "CSE",
	})
	require.ErrorIs(t, err, ErrShortRoll)
	assert.Nil(t, repo.created)
}

func TestAuthServiceRegisterAllowsGuestRoll(t *testing.T) {
	repo := &authRepoMock{}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "guest@b.edu", Roll: models.GuestRoll, Course: "CSE",
	})
	require.NoError(t, err)
	assert.Equal(t, FallbackPassword, res.Password)
}

func TestAuthServiceLoginAdminShortCircuit(t *testing.T) {
	repo := &authRepoMock{byCredsErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{Email: "admin@coe.edu", Password: "secret"})

	res, err := svc.Login(context.Background(), models.LoginRequest{UserID: "admin@coe.edu", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, res.IsAdmin)
	assert.Equal(t, "Administrator", res.UserName)
}

func TestAuthServiceLoginStudent(t *testing.T) {
	repo := &authRepoMock{byCreds: &models.User{Email: "a@b.edu", Name: "Asha"}}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	res, err := svc.Login(context.Background(), models.LoginRequest{UserID: "a@b.edu", Password: "20000101"})
	require.NoError(t, err)
	assert.False(t, res.IsAdmin)
	assert.Equal(t, "Asha", res.UserName)
}

func TestAuthServiceLoginWrongCredentials(t *testing.T) {
	repo := &authRepoMock{byCredsErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	_, err := svc.Login(context.Background(), models.LoginRequest{UserID: "a@b.edu", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestAuthServiceLoginEmptyPassword(t *testing.T) {
	repo := &authRepoMock{byCredsErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	_, err := svc.Login(context.Background(), models.LoginRequest{UserID: "a@b.edu", Password: ""})
	require.ErrorIs(t, err, ErrInvalidLogin)
	assert.Equal(t, "Invalid Email or Password!", ErrInvalidLogin.Message)
}

func TestAuthServiceForgotPassword(t *testing.T) {
	repo := &authRepoMock{byEmail: &models.User{Email: "a@b.edu", Password: "20000101"}}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	password, err := svc.ForgotPassword(context.Background(), "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, "20000101", password)
}

func TestAuthServiceForgotPasswordUnknownEmail(t *testing.T) {
	repo := &authRepoMock{byEmailErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	_, err := svc.ForgotPassword(context.Background(), "missing@b.edu")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestAuthServiceForgotUserIDNoMatch(t *testing.T) {
	repo := &authRepoMock{identErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, config.AdminConfig{})

	_, err := svc.ForgotUserID(context.Background(), models.ForgotUserIDRequest{Roll: "20230001", Course: "CSE"})
	assert.ErrorIs(t, err, ErrNoMatchingUser)
}
