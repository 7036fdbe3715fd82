package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
)

type userRepoMock struct {
	profile      *models.Profile
	profileErr   error
	affected     int64
	users        []models.AdminUser
	attendance   string
	grade        string
	deletedEmail string
}

func (m *userRepoMock) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	return m.profile, m.profileErr
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (int64, error) {
	return m.affected, nil
}

func (m *userRepoMock) List(ctx context.Context) ([]models.AdminUser, error) {
	return m.users, nil
}

func (m *userRepoMock) UpdateAttendance(ctx context.Context, email, attendance, grade string) error {
	m.attendance, m.grade = attendance, grade
	return nil
}

func (m *userRepoMock) Delete(ctx context.Context, email string) error {
	m.deletedEmail = email
	return nil
}

func TestUserServiceGetProfileNotFound(t *testing.T) {
	svc := NewUserService(&userRepoMock{profileErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.GetProfile(context.Background(), "missing@b.edu")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceUpdateProfileNoRowTouched(t *testing.T) {
	svc := NewUserService(&userRepoMock{affected: 0}, nil, nil)

	err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{
		Email: "a@b.edu", Name: "Asha", Roll: "20230001", Course: "CSE",
	})
	assert.ErrorIs(t, err, ErrProfileUnchanged)
}

func TestUserServiceUpdateProfile(t *testing.T) {
	svc := NewUserService(&userRepoMock{affected: 1}, nil, nil)

	err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{
		Email: "a@b.edu", Name: "Asha", Roll: "20230001", Course: "CSE",
	})
	require.NoError(t, err)
}

func TestUserServiceUpdateAttendanceNumbers(t *testing.T) {
	repo := &userRepoMock{}
	svc := NewUserService(repo, nil, nil)

	err := svc.UpdateAttendance(context.Background(), models.UpdateAttendanceRequest{
		Email: "a@b.edu", Attendance: "92", Grade: "8.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "92", repo.attendance)
	assert.Equal(t, "8.5", repo.grade)
}
