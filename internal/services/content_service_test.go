package services

import (
	"context"
	"testing"

	"orgsite-backend/internal/domain/content"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistoryRepo struct {
	rows map[uuid.UUID]content.HistoryEntry
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{rows: make(map[uuid.UUID]content.HistoryEntry)}
}

func (r *fakeHistoryRepo) Create(_ context.Context, h *content.HistoryEntry) error {
	r.rows[h.ID] = *h
	return nil
}

func (r *fakeHistoryRepo) GetByID(_ context.Context, id uuid.UUID) (content.HistoryEntry, error) {
	h, ok := r.rows[id]
	if !ok {
		return content.HistoryEntry{}, site_errors.ErrNotFound
	}
	return h, nil
}

func (r *fakeHistoryRepo) List(_ context.Context) ([]content.HistoryEntry, error) {
	var out []content.HistoryEntry
	for _, h := range r.rows {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHistoryRepo) Update(_ context.Context, h content.HistoryEntry) error {
	if _, ok := r.rows[h.ID]; !ok {
		return site_errors.ErrNotFound
	}
	r.rows[h.ID] = h
	return nil
}

func (r *fakeHistoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return site_errors.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type memWorkProgramRepo struct {
	rows map[uuid.UUID]content.WorkProgram
}

func newMemWorkProgramRepo() *memWorkProgramRepo {
	return &memWorkProgramRepo{rows: make(map[uuid.UUID]content.WorkProgram)}
}

func (r *memWorkProgramRepo) Create(_ context.Context, p *content.WorkProgram) error {
	r.rows[p.ID] = *p
	return nil
}

func (r *memWorkProgramRepo) GetByID(_ context.Context, id uuid.UUID) (content.WorkProgram, error) {
	p, ok := r.rows[id]
	if !ok {
		return content.WorkProgram{}, site_errors.ErrNotFound
	}
	return p, nil
}

func (r *memWorkProgramRepo) List(_ context.Context) ([]content.WorkProgram, error) {
	var out []content.WorkProgram
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *memWorkProgramRepo) Update(_ context.Context, p content.WorkProgram) error {
	if _, ok := r.rows[p.ID]; !ok {
		return site_errors.ErrNotFound
	}
	r.rows[p.ID] = p
	return nil
}

func (r *memWorkProgramRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *memWorkProgramRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, p := range r.rows {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func TestHistoryCreate(t *testing.T) {
	svc := NewHistoryService(newFakeHistoryRepo())

	h, err := svc.Create(context.Background(), HistoryInput{Year: 1998, Title: "Founded"})
	require.NoError(t, err)
	assert.Equal(t, 1998, h.Year)

	_, err = svc.Create(context.Background(), HistoryInput{Title: "no year"})
	require.ErrorIs(t, err, site_errors.ErrInvalidInput)

	_, err = svc.Create(context.Background(), HistoryInput{Year: 2001})
	require.ErrorIs(t, err, site_errors.ErrInvalidInput)
}

func TestHistoryUpdate_PatchesOnlyGivenFields(t *testing.T) {
	svc := NewHistoryService(newFakeHistoryRepo())

	h, err := svc.Create(context.Background(), HistoryInput{Year: 1998, Title: "Founded", Description: "original"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), h.ID, HistoryInput{Description: "revised"})
	require.NoError(t, err)
	assert.Equal(t, 1998, updated.Year)
	assert.Equal(t, "Founded", updated.Title)
	assert.Equal(t, "revised", updated.Description)

	_, err = svc.Update(context.Background(), uuid.New(), HistoryInput{Title: "x"})
	require.ErrorIs(t, err, site_errors.ErrNotFound)
}

func TestWorkProgramCreate_StatusValidation(t *testing.T) {
	svc := NewWorkProgramService(newMemWorkProgramRepo())

	p, err := svc.Create(context.Background(), WorkProgramInput{Name: "Tutoring"})
	require.NoError(t, err)
	assert.Equal(t, content.StatusUpcoming, p.Status)

	p, err = svc.Create(context.Background(), WorkProgramInput{Name: "Cleanup", Status: content.StatusOngoing})
	require.NoError(t, err)
	assert.Equal(t, content.StatusOngoing, p.Status)

	_, err = svc.Create(context.Background(), WorkProgramInput{Name: "Bad", Status: "paused"})
	require.ErrorIs(t, err, site_errors.ErrInvalidInput)
}

func TestWorkProgramUpdate_RejectsBadStatus(t *testing.T) {
	repo := newMemWorkProgramRepo()
	svc := NewWorkProgramService(repo)

	p, err := svc.Create(context.Background(), WorkProgramInput{Name: "Tutoring"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), p.ID, WorkProgramInput{Status: content.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, content.StatusCompleted, updated.Status)

	_, err = svc.Update(context.Background(), p.ID, WorkProgramInput{Status: "paused"})
	require.ErrorIs(t, err, site_errors.ErrInvalidInput)

	// the stored row keeps the last valid status
	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StatusCompleted, stored.Status)
}
