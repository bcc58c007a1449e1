package services

import (
	"context"
	"testing"

	"orgsite-backend/internal/domain/member"
	site_errors "orgsite-backend/pkg/errors"
	"orgsite-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberStatsGet_MissingRowIsZero(t *testing.T) {
	repo := &fakeMemberStatsRepo{err: site_errors.ErrNotFound}
	svc := NewMemberStatsService(repo, nil)

	stats, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, member.Stats{}, stats)
}

func TestMemberStatsUpdate(t *testing.T) {
	repo := &fakeMemberStatsRepo{err: site_errors.ErrNotFound}
	cache := &fakeStatsCache{}
	require.NoError(t, cache.Set(context.Background(), OrganizationStats{ActiveMembers: 1}))
	stats := NewStatsService(repo, &fakeWorkProgramRepo{}, &fakeAchievementRepo{}, cache, logger.NewNop())
	svc := NewMemberStatsService(repo, stats)

	saved, err := svc.Update(context.Background(), MemberStatsInput{
		ActiveMembers: 120,
		Alumni:        45,
		TotalMembers:  165,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, saved.ActiveMembers)

	// the public aggregate cache was dropped
	assert.Nil(t, cache.payload)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 165, got.TotalMembers)
}

func TestMemberStatsUpdate_RejectsNegative(t *testing.T) {
	svc := NewMemberStatsService(&fakeMemberStatsRepo{}, nil)
	_, err := svc.Update(context.Background(), MemberStatsInput{Alumni: -1})
	require.ErrorIs(t, err, site_errors.ErrInvalidInput)
}
