package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"orgsite-backend/internal/domain/resource"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"
	"orgsite-backend/pkg/logger"

	"github.com/google/uuid"
)

// ObjectStorage is the blob-store contract the attachment lifecycle
// runs against. Implemented by storage.Client; faked in tests.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Remove(ctx context.Context, key string) error
	FileURL(key string) string
}

// AttachmentService owns the invariant that the file rows recorded
// against a resource match the blobs present in object storage. All
// mutations pair a row operation with its blob operation: blob before
// row on delete, row before blob never on create. Per-file failures
// are non-fatal; record-store failures abort the operation.
type AttachmentService struct {
	repo    repository.ResourceRepository
	storage ObjectStorage
	logger  *logger.Logger
}

func NewAttachmentService(repo repository.ResourceRepository, storage ObjectStorage, l *logger.Logger) *AttachmentService {
	return &AttachmentService{repo: repo, storage: storage, logger: l}
}

// UploadedFile is one incoming multipart file.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

type CreateResourceInput struct {
	Name        string
	Description string
	Category    string
}

type UpdateResourceInput struct {
	Name        string
	Description string
	Category    string
}

// ResourceWithFiles is the reconciled view returned by every mutation.
// AttachedCount < RequestedCount signals partial upload failure.
type ResourceWithFiles struct {
	Resource       resource.Resource
	AttachedCount  int
	RequestedCount int
}

// FileTypeOf derives the lowercased extension of a filename, or
// "unknown" when there is none.
func FileTypeOf(fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		return "unknown"
	}
	return strings.ToLower(ext)
}

// BuildStoragePath derives the collision-resistant object key for a
// file: {fileType}/{uuid}-{fileName}. The random prefix keeps sibling
// files with the same name from overwriting each other.
func BuildStoragePath(fileName string) string {
	return FileTypeOf(fileName) + "/" + uuid.NewString() + "-" + fileName
}

// CreateResourceWithFiles inserts a resource and attaches every upload
// that succeeds. At least one file is required; files that fail to
// upload are skipped and surface only through the attached count.
func (s *AttachmentService) CreateResourceWithFiles(ctx context.Context, in CreateResourceInput, files []UploadedFile) (ResourceWithFiles, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" {
		return ResourceWithFiles{}, site_errors.ErrInvalidInput
	}
	if len(files) == 0 {
		return ResourceWithFiles{}, site_errors.ErrNoFiles
	}

	category := in.Category
	if category == "" {
		category = resource.CategoryOther
	}

	res := &resource.Resource{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return ResourceWithFiles{}, err
	}

	attached, err := s.attachFiles(ctx, res.ID, files)
	if err != nil {
		return ResourceWithFiles{}, err
	}

	res.Files = attached
	return ResourceWithFiles{
		Resource:       *res,
		AttachedCount:  len(attached),
		RequestedCount: len(files),
	}, nil
}

// UpdateResourceFiles reconciles a resource's files in strict order:
// patch scalars, delete everything not in retain, append newFiles, then
// re-read. Retained ids that match nothing are ignored; an empty retain
// set deletes every existing file.
func (s *AttachmentService) UpdateResourceFiles(ctx context.Context, id uuid.UUID, in UpdateResourceInput, newFiles []UploadedFile, retain []uuid.UUID) (ResourceWithFiles, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ResourceWithFiles{}, err
	}

	fields := map[string]interface{}{}
	if strings.TrimSpace(in.Name) != "" {
		fields["name"] = in.Name
	}
	if strings.TrimSpace(in.Description) != "" {
		fields["description"] = in.Description
	}
	if in.Category != "" {
		fields["category"] = in.Category
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return ResourceWithFiles{}, err
	}

	retained := make(map[uuid.UUID]struct{}, len(retain))
	for _, fid := range retain {
		retained[fid] = struct{}{}
	}

	existing, err := s.repo.ListFiles(ctx, id)
	if err != nil {
		return ResourceWithFiles{}, err
	}
	for _, f := range existing {
		if _, keep := retained[f.ID]; keep {
			continue
		}
		// Blob first, row second: a failure here leaves an orphan
		// blob, never a row pointing at nothing.
		if err := s.storage.Remove(ctx, f.StoragePath); err != nil {
			s.logger.Warnf("failed to remove blob %s: %v", f.StoragePath, err)
		}
		if err := s.repo.DeleteFile(ctx, f.ID); err != nil {
			return ResourceWithFiles{}, err
		}
	}

	attached, err := s.attachFiles(ctx, id, newFiles)
	if err != nil {
		return ResourceWithFiles{}, err
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ResourceWithFiles{}, err
	}
	return ResourceWithFiles{
		Resource:       res,
		AttachedCount:  len(attached),
		RequestedCount: len(newFiles),
	}, nil
}

// DeleteResource removes every attached blob, every file row, then the
// resource itself. Deleting a missing resource is a no-op success so
// callers can retry freely.
func (s *AttachmentService) DeleteResource(ctx context.Context, id uuid.UUID) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, site_errors.ErrNotFound) {
			return nil
		}
		return err
	}

	for _, f := range res.Files {
		if err := s.storage.Remove(ctx, f.StoragePath); err != nil {
			s.logger.Warnf("failed to remove blob %s: %v", f.StoragePath, err)
		}
	}
	if err := s.repo.DeleteFilesByResource(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, site_errors.ErrNotFound) {
		return err
	}
	return nil
}

// GetResource returns a resource joined with its files.
func (s *AttachmentService) GetResource(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

// ListResources returns all resources, newest first.
func (s *AttachmentService) ListResources(ctx context.Context) ([]resource.Resource, error) {
	return s.repo.List(ctx)
}

// attachFiles uploads each file and records a row for every upload that
// succeeds. Upload failures are logged and skipped; row insert failures
// abort, since the record store is the source of truth.
func (s *AttachmentService) attachFiles(ctx context.Context, resourceID uuid.UUID, files []UploadedFile) ([]resource.ResourceFile, error) {
	var attached []resource.ResourceFile
	for _, f := range files {
		fileType := FileTypeOf(f.Name)
		key := BuildStoragePath(f.Name)

		if err := s.storage.Put(ctx, key, f.Data, f.ContentType); err != nil {
			s.logger.Errorf("upload failed for %s: %v", f.Name, err)
			continue
		}

		rec := resource.ResourceFile{
			ID:          uuid.New(),
			ResourceID:  resourceID,
			FileName:    f.Name,
			StoragePath: key,
			FileURL:     s.storage.FileURL(key),
			FileType:    fileType,
		}
		if err := s.repo.CreateFile(ctx, &rec); err != nil {
			return nil, err
		}
		attached = append(attached, rec)
	}
	return attached, nil
}
