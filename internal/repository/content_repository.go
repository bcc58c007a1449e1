package repository

import (
	"context"
	"errors"
	"time"

	"orgsite-backend/internal/domain/content"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresHistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Create(ctx context.Context, h *content.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *PostgresHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (content.HistoryEntry, error) {
	var h content.HistoryEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return content.HistoryEntry{}, site_errors.ErrNotFound
		}
		return content.HistoryEntry{}, err
	}
	return h, nil
}

func (r *PostgresHistoryRepository) List(ctx context.Context) ([]content.HistoryEntry, error) {
	var out []content.HistoryEntry
	err := r.db.WithContext(ctx).Order("year ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHistoryRepository) Update(ctx context.Context, h content.HistoryEntry) error {
	h.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Save(&h)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.HistoryEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

type PostgresWorkProgramRepository struct {
	db *gorm.DB
}

func NewWorkProgramRepository(db *gorm.DB) WorkProgramRepository {
	return &PostgresWorkProgramRepository{db: db}
}

func (r *PostgresWorkProgramRepository) Create(ctx context.Context, p *content.WorkProgram) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresWorkProgramRepository) GetByID(ctx context.Context, id uuid.UUID) (content.WorkProgram, error) {
	var p content.WorkProgram
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return content.WorkProgram{}, site_errors.ErrNotFound
		}
		return content.WorkProgram{}, err
	}
	return p, nil
}

func (r *PostgresWorkProgramRepository) List(ctx context.Context) ([]content.WorkProgram, error) {
	var out []content.WorkProgram
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresWorkProgramRepository) Update(ctx context.Context, p content.WorkProgram) error {
	p.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Save(&p)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresWorkProgramRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.WorkProgram{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresWorkProgramRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&content.WorkProgram{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
