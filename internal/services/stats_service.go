package services

import (
	"context"
	"errors"

	"orgsite-backend/internal/domain/content"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"
	"orgsite-backend/pkg/logger"
)

// StatsCache is the cache contract for the public stats payload.
// Implemented by redis.StatsCache; faked in tests.
type StatsCache interface {
	Get(ctx context.Context, dest interface{}) (bool, error)
	Set(ctx context.Context, value interface{}) error
	Invalidate(ctx context.Context) error
}

// OrganizationStats is the aggregate shown on the landing page.
type OrganizationStats struct {
	ActiveMembers int `json:"active_members"`
	Alumni        int `json:"alumni"`
	TotalMembers  int `json:"total_members"`
	LocalChapters int `json:"local_chapters"`
	Programs      int `json:"programs"`
	Achievements  int `json:"achievements"`
}

// localChapterCount is fixed: the site covers a single local chapter.
const localChapterCount = 1

// StatsService assembles the public stats aggregate from member stats,
// ongoing work programs and achievements, behind a short-TTL cache.
// Store failures degrade to a zero-valued payload rather than erroring
// the public page.
type StatsService struct {
	members      repository.MemberStatsRepository
	programs     repository.WorkProgramRepository
	achievements repository.AchievementRepository
	cache        StatsCache
	logger       *logger.Logger
}

func NewStatsService(
	members repository.MemberStatsRepository,
	programs repository.WorkProgramRepository,
	achievements repository.AchievementRepository,
	cache StatsCache,
	l *logger.Logger,
) *StatsService {
	return &StatsService{
		members:      members,
		programs:     programs,
		achievements: achievements,
		cache:        cache,
		logger:       l,
	}
}

func (s *StatsService) Get(ctx context.Context) OrganizationStats {
	if s.cache != nil {
		var cached OrganizationStats
		hit, err := s.cache.Get(ctx, &cached)
		if err != nil {
			s.logger.Warnf("stats cache read failed: %v", err)
		} else if hit {
			return cached
		}
	}

	stats := OrganizationStats{LocalChapters: localChapterCount}

	if m, err := s.members.Get(ctx); err == nil {
		stats.ActiveMembers = m.ActiveMembers
		stats.Alumni = m.Alumni
		stats.TotalMembers = m.TotalMembers
	} else if !errors.Is(err, site_errors.ErrNotFound) {
		s.logger.Warnf("failed to load member stats: %v", err)
	}

	if n, err := s.programs.CountByStatus(ctx, content.StatusOngoing); err == nil {
		stats.Programs = int(n)
	} else {
		s.logger.Warnf("failed to count ongoing programs: %v", err)
	}

	if n, err := s.achievements.Count(ctx); err == nil {
		stats.Achievements = int(n)
	} else {
		s.logger.Warnf("failed to count achievements: %v", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warnf("stats cache write failed: %v", err)
		}
	}
	return stats
}

// InvalidateCache drops the cached aggregate after an admin write.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warnf("stats cache invalidation failed: %v", err)
	}
}
