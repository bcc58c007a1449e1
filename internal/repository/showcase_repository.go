package repository

import (
	"context"
	"time"

	"orgsite-backend/internal/domain/showcase"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresAchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &PostgresAchievementRepository{db: db}
}

func (r *PostgresAchievementRepository) Create(ctx context.Context, a *showcase.Achievement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *PostgresAchievementRepository) List(ctx context.Context) ([]showcase.Achievement, error) {
	var out []showcase.Achievement
	err := r.db.WithContext(ctx).Order("year DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAchievementRepository) Update(ctx context.Context, a showcase.Achievement) error {
	a.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Save(&a)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresAchievementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&showcase.Achievement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresAchievementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&showcase.Achievement{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

type PostgresMerchandiseRepository struct {
	db *gorm.DB
}

func NewMerchandiseRepository(db *gorm.DB) MerchandiseRepository {
	return &PostgresMerchandiseRepository{db: db}
}

func (r *PostgresMerchandiseRepository) Create(ctx context.Context, m *showcase.Merchandise) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PostgresMerchandiseRepository) List(ctx context.Context) ([]showcase.Merchandise, error) {
	var out []showcase.Merchandise
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMerchandiseRepository) Update(ctx context.Context, m showcase.Merchandise) error {
	m.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Save(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresMerchandiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&showcase.Merchandise{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}
