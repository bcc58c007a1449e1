package repository

import (
	"context"
	"errors"
	"time"

	"orgsite-backend/internal/domain/people"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresFounderRepository struct {
	db *gorm.DB
}

func NewFounderRepository(db *gorm.DB) FounderRepository {
	return &PostgresFounderRepository{db: db}
}

func (r *PostgresFounderRepository) Create(ctx context.Context, f *people.Founder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *PostgresFounderRepository) List(ctx context.Context) ([]people.Founder, error) {
	var out []people.Founder
	err := r.db.WithContext(ctx).Order("order_index ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFounderRepository) Update(ctx context.Context, f people.Founder) error {
	f.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Save(&f)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresFounderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&people.Founder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

type PostgresBoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &PostgresBoardRepository{db: db}
}

func (r *PostgresBoardRepository) CreateMember(ctx context.Context, m *people.BoardMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PostgresBoardRepository) ListMembers(ctx context.Context) ([]people.BoardMember, error) {
	var out []people.BoardMember
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresBoardRepository) UpdateMember(ctx context.Context, m people.BoardMember) error {
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

func (r *PostgresBoardRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&people.BoardMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return site_errors.ErrNotFound
	}
	return nil
}

// GetTerm returns the single board term row.
func (r *PostgresBoardRepository) GetTerm(ctx context.Context) (people.BoardTerm, error) {
	var t people.BoardTerm
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return people.BoardTerm{}, site_errors.ErrNotFound
		}
		return people.BoardTerm{}, err
	}
	return t, nil
}

// SaveTerm replaces the current term, keeping a single active row.
func (r *PostgresBoardRepository) SaveTerm(ctx context.Context, t *people.BoardTerm) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&people.BoardTerm{}).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}
