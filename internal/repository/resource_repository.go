package repository

import (
	"context"
	"errors"
	"time"

	"orgsite-backend/internal/domain/resource"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	result := r.db.WithContext(ctx).Create(res)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return site_errors.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *PostgresResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	var res resource.Resource
	err := r.db.WithContext(ctx).Preload("Files").Where("id = ?", id).First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Resource{}, site_errors.ErrNotFound
		}
		return resource.Resource{}, err
	}
	return res, nil
}

func (r *PostgresResourceRepository) List(ctx context.Context) ([]resource.Resource, error) {
	var out []resource.Resource
	err := r.db.WithContext(ctx).
		Preload("Files").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResourceRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&resource.Resource{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&resource.Resource{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresResourceRepository) CreateFile(ctx context.Context, f *resource.ResourceFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *PostgresResourceRepository) ListFiles(ctx context.Context, resourceID uuid.UUID) ([]resource.ResourceFile, error) {
	var files []resource.ResourceFile
	err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("created_at ASC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *PostgresResourceRepository) DeleteFile(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&resource.ResourceFile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresResourceRepository) DeleteFilesByResource(ctx context.Context, resourceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&resource.ResourceFile{}, "resource_id = ?", resourceID).Error
}
