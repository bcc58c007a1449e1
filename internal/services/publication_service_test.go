package services

import (
	"context"
	"testing"
	"time"

	"orgsite-backend/internal/domain/publication"
	site_errors "orgsite-backend/pkg/errors"
	"orgsite-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublicationRepo struct {
	rows map[uuid.UUID]publication.Publication
}

func newFakePublicationRepo() *fakePublicationRepo {
	return &fakePublicationRepo{rows: make(map[uuid.UUID]publication.Publication)}
}

func (r *fakePublicationRepo) Create(_ context.Context, p *publication.Publication) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.rows[p.ID] = *p
	return nil
}

func (r *fakePublicationRepo) GetByID(_ context.Context, id uuid.UUID) (publication.Publication, error) {
	p, ok := r.rows[id]
	if !ok {
		return publication.Publication{}, site_errors.ErrNotFound
	}
	return p, nil
}

func (r *fakePublicationRepo) List(_ context.Context) ([]publication.Publication, error) {
	var out []publication.Publication
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePublicationRepo) Update(_ context.Context, p publication.Publication) error {
	if _, ok := r.rows[p.ID]; !ok {
		return site_errors.ErrNotFound
	}
	r.rows[p.ID] = p
	return nil
}

func (r *fakePublicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return site_errors.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func newPublicationFixture() (*PublicationService, *fakePublicationRepo, *fakeStorage) {
	repo := newFakePublicationRepo()
	store := newFakeStorage()
	return NewPublicationService(repo, store, logger.NewNop()), repo, store
}

func TestPublicationCreate(t *testing.T) {
	svc, _, store := newPublicationFixture()

	pdf := textFile("annual-report.pdf", "pdf body")
	p, err := svc.Create(context.Background(), PublicationInput{
		Title:   "Annual Report",
		Authors: "Board of Directors",
		Year:    2025,
	}, &pdf)
	require.NoError(t, err)

	require.True(t, p.PDFPath.Valid)
	assert.Contains(t, p.PDFPath.String, "pdf/")
	assert.Equal(t, store.FileURL(p.PDFPath.String), p.PDFURL.String)
	_, uploaded := store.objects[p.PDFPath.String]
	assert.True(t, uploaded)
}

func TestPublicationCreate_NoPDF(t *testing.T) {
	svc, _, store := newPublicationFixture()

	p, err := svc.Create(context.Background(), PublicationInput{Title: "Essay", Year: 2024}, nil)
	require.NoError(t, err)
	assert.False(t, p.PDFPath.Valid)
	assert.Empty(t, store.objects)
}

func TestPublicationCreate_UploadFailureIsFatal(t *testing.T) {
	svc, repo, store := newPublicationFixture()
	store.failPutSubstring = "paper.pdf"

	pdf := textFile("paper.pdf", "x")
	_, err := svc.Create(context.Background(), PublicationInput{Title: "Paper"}, &pdf)
	require.ErrorIs(t, err, site_errors.ErrNotUploaded)
	assert.Empty(t, repo.rows)
}

func TestPublicationCreate_MissingTitle(t *testing.T) {
	svc, _, _ := newPublicationFixture()
	_, err := svc.Create(context.Background(), PublicationInput{Title: " "}, nil)
	require.ErrorIs(t, err, site_errors.ErrInvalidInput)
}

func TestPublicationUpdate_ReplacesPDF(t *testing.T) {
	svc, _, store := newPublicationFixture()

	first := textFile("v1.pdf", "old")
	p, err := svc.Create(context.Background(), PublicationInput{Title: "Report"}, &first)
	require.NoError(t, err)
	oldKey := p.PDFPath.String

	second := textFile("v2.pdf", "new")
	updated, err := svc.Update(context.Background(), p.ID, PublicationInput{}, &second)
	require.NoError(t, err)

	assert.NotEqual(t, oldKey, updated.PDFPath.String)
	assert.Equal(t, []string{oldKey}, store.removed)
	_, gone := store.objects[oldKey]
	assert.False(t, gone)
}

func TestPublicationUpdate_PatchesScalars(t *testing.T) {
	svc, _, _ := newPublicationFixture()

	p, err := svc.Create(context.Background(), PublicationInput{Title: "Draft", Year: 2023}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), p.ID, PublicationInput{Authors: "A. Writer"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Draft", updated.Title)
	assert.Equal(t, 2023, updated.Year)
	assert.Equal(t, "A. Writer", updated.Authors)
}

func TestPublicationDelete(t *testing.T) {
	svc, repo, store := newPublicationFixture()

	pdf := textFile("a.pdf", "x")
	p, err := svc.Create(context.Background(), PublicationInput{Title: "Gone"}, &pdf)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.Empty(t, repo.rows)
	assert.Empty(t, store.objects)

	// deleting again is a no-op
	require.NoError(t, svc.Delete(context.Background(), p.ID))
}
