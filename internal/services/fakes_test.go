package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"orgsite-backend/internal/domain/resource"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
)

// fakeResourceRepo is an in-memory ResourceRepository.
type fakeResourceRepo struct {
	resources map[uuid.UUID]resource.Resource
	files     map[uuid.UUID]resource.ResourceFile

	failCreateFile bool
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{
		resources: make(map[uuid.UUID]resource.Resource),
		files:     make(map[uuid.UUID]resource.ResourceFile),
	}
}

func (r *fakeResourceRepo) Create(_ context.Context, res *resource.Resource) error {
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	r.resources[res.ID] = *res
	return nil
}

func (r *fakeResourceRepo) GetByID(_ context.Context, id uuid.UUID) (resource.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return resource.Resource{}, site_errors.ErrNotFound
	}
	res.Files = r.filesOf(id)
	return res, nil
}

func (r *fakeResourceRepo) List(_ context.Context) ([]resource.Resource, error) {
	var out []resource.Resource
	for id, res := range r.resources {
		res.Files = r.filesOf(id)
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeResourceRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
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
	res.UpdatedAt = time.Now()
	r.resources[id] = res
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.resources[id]; !ok {
		return site_errors.ErrNotFound
	}
	delete(r.resources, id)
	return nil
}

func (r *fakeResourceRepo) CreateFile(_ context.Context, f *resource.ResourceFile) error {
	if r.failCreateFile {
		return errors.New("insert failed")
	}
	f.CreatedAt = time.Now()
	r.files[f.ID] = *f
	return nil
}

func (r *fakeResourceRepo) ListFiles(_ context.Context, resourceID uuid.UUID) ([]resource.ResourceFile, error) {
	return r.filesOf(resourceID), nil
}

func (r *fakeResourceRepo) DeleteFile(_ context.Context, id uuid.UUID) error {
	if _, ok := r.files[id]; !ok {
		return site_errors.ErrNotFound
	}
	delete(r.files, id)
	return nil
}

func (r *fakeResourceRepo) DeleteFilesByResource(_ context.Context, resourceID uuid.UUID) error {
	for id, f := range r.files {
		if f.ResourceID == resourceID {
			delete(r.files, id)
		}
	}
	return nil
}

func (r *fakeResourceRepo) filesOf(resourceID uuid.UUID) []resource.ResourceFile {
	var out []resource.ResourceFile
	for _, f := range r.files {
		if f.ResourceID == resourceID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// fakeStorage is an in-memory ObjectStorage.
type fakeStorage struct {
	objects map[string][]byte
	removed []string

	failPutSubstring string // Put fails for keys containing this
	failRemove       bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Put(_ context.Context, key string, body io.Reader, _ string) error {
	if s.failPutSubstring != "" && strings.Contains(key, s.failPutSubstring) {
		return errors.New("upload failed")
	}
	var buf bytes.Buffer
	if body != nil {
		if _, err := buf.ReadFrom(body); err != nil {
			return err
		}
	}
	s.objects[key] = buf.Bytes()
	return nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	if s.failRemove {
		return errors.New("remove failed")
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) FileURL(key string) string {
	return "https://cdn.example.org/storage/v1/object/public/resources/" + key
}
