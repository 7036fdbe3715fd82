package service

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
)

type idCardRepoMock struct {
	created       *models.IDApplication
	pending       []models.PendingApplication
	statusID      int64
	status        string
	uniqueID      *string
	approved      *models.IDApplication
	approvedErr   error
	updated       *models.FullEditIDRequest
	photoPath     string
	marksheetPath string
	approvedList  []models.IDApplication
	byEmail       []models.IDApplication
}

func (m *idCardRepoMock) Create(ctx context.Context, app *models.IDApplication) error {
	m.created = app
	return nil
}

func (m *idCardRepoMock) ListPending(ctx context.Context) ([]models.PendingApplication, error) {
	return m.pending, nil
}

func (m *idCardRepoMock) UpdateStatus(ctx context.Context, id int64, status string, uniqueID *string) error {
	m.statusID, m.status, m.uniqueID = id, status, uniqueID
	return nil
}

func (m *idCardRepoMock) FindApprovedByEmail(ctx context.Context, email string) (*models.IDApplication, error) {
	if m.approvedErr != nil {
		return nil, m.approvedErr
	}
	return m.approved, nil
}

func (m *idCardRepoMock) Update(ctx context.Context, req models.FullEditIDRequest) error {
	m.updated = &req
	return nil
}

func (m *idCardRepoMock) UpdatePhotoPath(ctx context.Context, id int64, path string) error {
	m.photoPath = path
	return nil
}

func (m *idCardRepoMock) UpdateMarksheetPath(ctx context.Context, id int64, path string) error {
	m.marksheetPath = path
	return nil
}

func (m *idCardRepoMock) ListApproved(ctx context.Context) ([]models.IDApplication, error) {
	return m.approvedList, nil
}

func (m *idCardRepoMock) ListByEmail(ctx context.Context, email string) ([]models.IDApplication, error) {
	return m.byEmail, nil
}

func TestNewCardIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^COE-[0-9A-F]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewCardID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIDCardServiceApplyShortRoll(t *testing.T) {
	repo := &idCardRepoMock{}
	svc := NewIDCardService(repo, nil, nil, nil)

	err := svc.Apply(context.Background(), models.ApplyIDRequest{
		Email: "a@b.edu", FullName: "Asha", RollNo: "1234567", Department: "CSE", AcademicYear: "2025-26",
	}, nil, nil, nil)
	require.ErrorIs(t, err, ErrShortApplicationRoll)
	assert.Nil(t, repo.created)
}

func TestIDCardServiceApplyMissingFiles(t *testing.T) {
	svc := NewIDCardService(&idCardRepoMock{}, nil, nil, nil)

	err := svc.Apply(context.Background(), models.ApplyIDRequest{
		Email: "a@b.edu", FullName: "Asha", RollNo: "20230001", Department: "CSE", AcademicYear: "2025-26",
	}, nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingFiles)
}

func TestIDCardServiceUpdateStatusApprovedIssuesID(t *testing.T) {
	repo := &idCardRepoMock{}
	svc := NewIDCardService(repo, nil, nil, nil)

	err := svc.UpdateStatus(context.Background(), models.UpdateIDStatusRequest{ID: 4, Status: models.StatusApproved})
	require.NoError(t, err)
	require.NotNil(t, repo.uniqueID)
	assert.Regexp(t, `^COE-[0-9A-F]{6}$`, *repo.uniqueID)
}

func TestIDCardServiceUpdateStatusRejectedClearsID(t *testing.T) {
	repo := &idCardRepoMock{}
	svc := NewIDCardService(repo, nil, nil, nil)

	err := svc.UpdateStatus(context.Background(), models.UpdateIDStatusRequest{ID: 4, Status: models.StatusRejected})
	require.NoError(t, err)
	assert.Nil(t, repo.uniqueID)
	assert.Equal(t, models.StatusRejected, repo.status)
}

func TestIDCardServiceGetVerifiedNotApproved(t *testing.T) {
	repo := &idCardRepoMock{approvedErr: sql.ErrNoRows}
	svc := NewIDCardService(repo, nil, nil, nil)

	_, err := svc.GetVerified(context.Background(), "a@b.edu")
	assert.ErrorIs(t, err, ErrNoApprovedID)
}

func TestIDCardServiceGetVerified(t *testing.T) {
	cardID := "COE-1A2B3C"
	repo := &idCardRepoMock{approved: &models.IDApplication{
		Email: "a@b.edu", Status: models.StatusApproved, UniqueID: &cardID,
	}}
	svc := NewIDCardService(repo, nil, nil, nil)

	app, err := svc.GetVerified(context.Background(), "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, cardID, *app.UniqueID)
}
