package repository

import (
	"context"

	"github.com/google/uuid"

	"orgsite-backend/internal/domain/content"
	"orgsite-backend/internal/domain/member"
	"orgsite-backend/internal/domain/people"
	"orgsite-backend/internal/domain/publication"
	"orgsite-backend/internal/domain/resource"
	"orgsite-backend/internal/domain/showcase"
)

// ResourceRepository is the record-store contract for resources and
// their attached file rows.
type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	GetByID(ctx context.Context, id uuid.UUID) (resource.Resource, error)
	List(ctx context.Context) ([]resource.Resource, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateFile(ctx context.Context, f *resource.ResourceFile) error
	ListFiles(ctx context.Context, resourceID uuid.UUID) ([]resource.ResourceFile, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
	DeleteFilesByResource(ctx context.Context, resourceID uuid.UUID) error
}

type PublicationRepository interface {
	Create(ctx context.Context, p *publication.Publication) error
	GetByID(ctx context.Context, id uuid.UUID) (publication.Publication, error)
	List(ctx context.Context) ([]publication.Publication, error)
	Update(ctx context.Context, p publication.Publication) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HistoryRepository interface {
	Create(ctx context.Context, h *content.HistoryEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (content.HistoryEntry, error)
	List(ctx context.Context) ([]content.HistoryEntry, error)
	Update(ctx context.Context, h content.HistoryEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WorkProgramRepository interface {
	Create(ctx context.Context, p *content.WorkProgram) error
	GetByID(ctx context.Context, id uuid.UUID) (content.WorkProgram, error)
	List(ctx context.Context) ([]content.WorkProgram, error)
	Update(ctx context.Context, p content.WorkProgram) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type FounderRepository interface {
	Create(ctx context.Context, f *people.Founder) error
	List(ctx context.Context) ([]people.Founder, error)
	Update(ctx context.Context, f people.Founder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BoardRepository interface {
	CreateMember(ctx context.Context, m *people.BoardMember) error
	ListMembers(ctx context.Context) ([]people.BoardMember, error)
	UpdateMember(ctx context.Context, m people.BoardMember) error
	DeleteMember(ctx context.Context, id uuid.UUID) error

	GetTerm(ctx context.Context) (people.BoardTerm, error)
	SaveTerm(ctx context.Context, t *people.BoardTerm) error
}

type AchievementRepository interface {
	Create(ctx context.Context, a *showcase.Achievement) error
	List(ctx context.Context) ([]showcase.Achievement, error)
	Update(ctx context.Context, a showcase.Achievement) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type MerchandiseRepository interface {
	Create(ctx context.Context, m *showcase.Merchandise) error
	List(ctx context.Context) ([]showcase.Merchandise, error)
	Update(ctx context.Context, m showcase.Merchandise) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberStatsRepository interface {
	Get(ctx context.Context) (member.Stats, error)
	Save(ctx context.Context, s member.Stats) error
}
