package services

import (
	"context"
	"errors"

	"orgsite-backend/internal/domain/member"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"
)

// MemberStatsService manages the singleton membership numbers row.
type MemberStatsService struct {
	repo  repository.MemberStatsRepository
	stats *StatsService
}

func NewMemberStatsService(repo repository.MemberStatsRepository, stats *StatsService) *MemberStatsService {
	return &MemberStatsService{repo: repo, stats: stats}
}

type MemberStatsInput struct {
	ActiveMembers int `json:"active_members"`
	Alumni        int `json:"alumni"`
	TotalMembers  int `json:"total_members"`
}

// Get returns the stored numbers, or a zero-valued row when none has
// been saved yet.
func (s *MemberStatsService) Get(ctx context.Context) (member.Stats, error) {
	stats, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, site_errors.ErrNotFound) {
			return member.Stats{}, nil
		}
		return member.Stats{}, err
	}
	return stats, nil
}

func (s *MemberStatsService) Update(ctx context.Context, in MemberStatsInput) (member.Stats, error) {
	if in.ActiveMembers < 0 || in.Alumni < 0 || in.TotalMembers < 0 {
		return member.Stats{}, site_errors.ErrInvalidInput
	}
	stats := member.Stats{
		ActiveMembers: in.ActiveMembers,
		Alumni:        in.Alumni,
		TotalMembers:  in.TotalMembers,
	}
	if err := s.repo.Save(ctx, stats); err != nil {
		return member.Stats{}, err
	}
	if s.stats != nil {
		s.stats.InvalidateCache(ctx)
	}
	return stats, nil
}
