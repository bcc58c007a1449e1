package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orgsite-backend/internal/domain/resource"
	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"
	site_errors "orgsite-backend/pkg/errors"
	"orgsite-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memResourceRepo struct {
	resources map[uuid.UUID]resource.Resource
	files     map[uuid.UUID]resource.ResourceFile
}

func newMemResourceRepo() *memResourceRepo {
	return &memResourceRepo{
		resources: make(map[uuid.UUID]resource.Resource),
		files:     make(map[uuid.UUID]resource.ResourceFile),
	}
}

func (r *memResourceRepo) Create(_ context.Context, res *resource.Resource) error {
	r.resources[res.ID] = *res
	return nil
}

func (r *memResourceRepo) GetByID(_ context.Context, id uuid.UUID) (resource.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return resource.Resource{}, site_errors.ErrNotFound
	}
	for _, f := range r.files {
		if f.ResourceID == id {
			res.Files = append(res.Files, f)
		}
	}
	return res, nil
}

func (r *memResourceRepo) List(_ context.Context) ([]resource.Resource, error) {
	out := make([]resource.Resource, 0, len(r.resources))
	for id := range r.resources {
		res, _ := r.GetByID(context.Background(), id)
		out = append(out, res)
	}
	return out, nil
}

func (r *memResourceRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res, ok := r.resources[id]
	if !ok {
		return site_errors.ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		res.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		res.Description = v
	}
	if v, ok := fields["category"].(string); ok {
		res.Category = v
	}
	r.resources[id] = res
	return nil
}

func (r *memResourceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.resources[id]; !ok {
		return site_errors.ErrNotFound
	}
	delete(r.resources, id)
	return nil
}

func (r *memResourceRepo) CreateFile(_ context.Context, f *resource.ResourceFile) error {
	f.CreatedAt = time.Now()
	r.files[f.ID] = *f
	return nil
}

func (r *memResourceRepo) ListFiles(_ context.Context, resourceID uuid.UUID) ([]resource.ResourceFile, error) {
	var out []resource.ResourceFile
	for _, f := range r.files {
		if f.ResourceID == resourceID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memResourceRepo) DeleteFile(_ context.Context, id uuid.UUID) error {
	delete(r.files, id)
	return nil
}

func (r *memResourceRepo) DeleteFilesByResource(_ context.Context, resourceID uuid.UUID) error {
	for id, f := range r.files {
		if f.ResourceID == resourceID {
			delete(r.files, id)
		}
	}
	return nil
}

type memStorage struct {
	objects map[string][]byte
}

func (s *memStorage) Put(_ context.Context, key string, body io.Reader, _ string) error {
	var buf bytes.Buffer
	if body != nil {
		if _, err := buf.ReadFrom(body); err != nil {
			return err
		}
	}
	s.objects[key] = buf.Bytes()
	return nil
}

func (s *memStorage) Remove(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *memStorage) FileURL(key string) string {
	return "https://cdn.example.org/storage/v1/object/public/resources/" + key
}

func newResourceRouter() (*gin.Engine, *memResourceRepo, *memStorage) {
	gin.SetMode(gin.TestMode)
	repo := newMemResourceRepo()
	store := &memStorage{objects: make(map[string][]byte)}
	h := NewResourceHandler(services.NewAttachmentService(repo, store, logger.NewNop()))

	r := gin.New()
	r.GET("/v1/resources", h.List)
	r.GET("/v1/resources/:id", h.GetByID)
	r.POST("/v1/resources", h.Create)
	r.PUT("/v1/resources/:id", h.Update)
	r.DELETE("/v1/resources/:id", h.Delete)
	return r, repo, store
}

func multipartBody(t *testing.T, fields map[string]string, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range fileNames {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("contents of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestResourceCreate(t *testing.T) {
	r, repo, store := newResourceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Bylaws",
		"description": "Current bylaws",
		"category":    resource.CategoryOfficial,
	}, "bylaws.pdf", "appendix.docx")

	req := httptest.NewRequest(http.MethodPost, "/v1/resources", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp httpdto.Response[httpdto.ResourceWithFilesDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Bylaws", resp.Data.Name)
	assert.Equal(t, 2, resp.Data.AttachedCount)
	assert.Equal(t, 2, resp.Data.RequestedCount)
	require.Len(t, resp.Data.Files, 2)

	assert.Len(t, repo.files, 2)
	assert.Len(t, store.objects, 2)
}

func TestResourceCreate_NoFiles(t *testing.T) {
	r, repo, _ := newResourceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Empty",
		"description": "no files",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/resources", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httpdto.Response[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Empty(t, repo.resources)
}

func TestResourceUpdate_RetainAndAdd(t *testing.T) {
	r, repo, _ := newResourceRouter()

	// seed via the create endpoint
	body, contentType := multipartBody(t, map[string]string{
		"name":        "Minutes",
		"description": "meeting minutes",
	}, "jan.pdf", "feb.pdf")
	req := httptest.NewRequest(http.MethodPost, "/v1/resources", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpdto.Response[httpdto.ResourceWithFilesDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	var keepID string
	for _, f := range created.Data.Files {
		if f.FileName == "jan.pdf" {
			keepID = f.ID
		}
	}
	require.NotEmpty(t, keepID)

	// keep jan, drop feb, add mar
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("existing_files", keepID))
	fw, err := w.CreateFormFile("files", "mar.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("march"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req = httptest.NewRequest(http.MethodPut, "/v1/resources/"+created.Data.ID, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated httpdto.Response[httpdto.ResourceWithFilesDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))

	names := make([]string, 0, len(updated.Data.Files))
	for _, f := range updated.Data.Files {
		names = append(names, f.FileName)
	}
	assert.ElementsMatch(t, []string{"jan.pdf", "mar.pdf"}, names)
	assert.Len(t, repo.files, 2)
}

func TestResourceDelete(t *testing.T) {
	r, repo, store := newResourceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Doomed",
		"description": "to be removed",
	}, "a.pdf")
	req := httptest.NewRequest(http.MethodPost, "/v1/resources", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpdto.Response[httpdto.ResourceWithFilesDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodDelete, "/v1/resources/"+created.Data.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, repo.resources)
	assert.Empty(t, store.objects)

	// deleting again still succeeds
	req = httptest.NewRequest(http.MethodDelete, "/v1/resources/"+created.Data.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResourceBadID(t *testing.T) {
	r, _, _ := newResourceRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResourceGet_NotFound(t *testing.T) {
	r, _, _ := newResourceRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
