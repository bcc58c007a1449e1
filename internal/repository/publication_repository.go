package repository

import (
	"context"
	"errors"
	"time"

	"orgsite-backend/internal/domain/publication"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresPublicationRepository struct {
	db *gorm.DB
}

func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &PostgresPublicationRepository{db: db}
}

func (r *PostgresPublicationRepository) Create(ctx context.Context, p *publication.Publication) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresPublicationRepository) GetByID(ctx context.Context, id uuid.UUID) (publication.Publication, error) {
	var p publication.Publication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return publication.Publication{}, site_errors.ErrNotFound
		}
		return publication.Publication{}, err
	}
	return p, nil
}

func (r *PostgresPublicationRepository) List(ctx context.Context) ([]publication.Publication, error) {
	var out []publication.Publication
	err := r.db.WithContext(ctx).Order("year DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPublicationRepository) Update(ctx context.Context, p publication.Publication) error {
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

func (r *PostgresPublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&publication.Publication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}
