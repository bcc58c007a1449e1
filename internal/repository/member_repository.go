package repository

import (
	"context"
	"errors"
	"time"

	"orgsite-backend/internal/domain/member"
	site_errors "orgsite-backend/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// member_stats holds exactly one row.
const memberStatsRowID = 1

type PostgresMemberStatsRepository struct {
	db *gorm.DB
}

func NewMemberStatsRepository(db *gorm.DB) MemberStatsRepository {
	return &PostgresMemberStatsRepository{db: db}
}

func (r *PostgresMemberStatsRepository) Get(ctx context.Context) (member.Stats, error) {
	var s member.Stats
	err := r.db.WithContext(ctx).Where("id = ?", memberStatsRowID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return member.Stats{}, site_errors.ErrNotFound
		}
		return member.Stats{}, err
	}
	return s, nil
}

func (r *PostgresMemberStatsRepository) Save(ctx context.Context, s member.Stats) error {
	s.ID = memberStatsRowID
	s.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&s).Error
}
