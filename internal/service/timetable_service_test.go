package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/internal/repository"
)

type timetableRepoMock struct {
	inserted  []models.AddTimetableRequest
	deletedID int64
	rows      []models.TimetableEntry
}

func (m *timetableRepoMock) Insert(ctx context.Context, req models.AddTimetableRequest) error {
	m.inserted = append(m.inserted, req)
	return nil
}

func (m *timetableRepoMock) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func (m *timetableRepoMock) List(ctx context.Context) ([]models.TimetableEntry, error) {
	return m.rows, nil
}

type invalidatorMock struct {
	keys []string
}

func (m *invalidatorMock) Invalidate(ctx context.Context, keys ...string) {
	m.keys = append(m.keys, keys...)
}

func TestTimetableServiceAddInvalidatesContext(t *testing.T) {
	repo := &timetableRepoMock{}
	inv := &invalidatorMock{}
	svc := NewTimetableService(repo, inv, nil, nil)

	err := svc.Add(context.Background(), models.AddTimetableRequest{
		Course: "CSE", Year: "2nd", Time: "10:00", Subject: "DSA", Room: "B-204",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.Contains(t, inv.keys, repository.ContextCacheKey)
}

func TestTimetableServiceAddRejectsMissingFields(t *testing.T) {
	repo := &timetableRepoMock{}
	svc := NewTimetableService(repo, nil, nil, nil)

	err := svc.Add(context.Background(), models.AddTimetableRequest{Course: "CSE"})
	require.Error(t, err)
	assert.Empty(t, repo.inserted)
}

func TestTimetableServiceDeleteInvalidatesContext(t *testing.T) {
	repo := &timetableRepoMock{}
	inv := &invalidatorMock{}
	svc := NewTimetableService(repo, inv, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), repo.deletedID)
	assert.Contains(t, inv.keys, repository.ContextCacheKey)
}
