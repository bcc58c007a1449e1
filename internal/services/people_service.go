package services

import (
	"context"
	"strings"

	"orgsite-backend/internal/domain/people"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
)

// FounderService manages the founders page entries.
type FounderService struct {
	repo repository.FounderRepository
}

func NewFounderService(repo repository.FounderRepository) *FounderService {
	return &FounderService{repo: repo}
}

type FounderInput struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

func (s *FounderService) Create(ctx context.Context, in FounderInput) (people.Founder, error) {
	if strings.TrimSpace(in.Name) == "" {
		return people.Founder{}, site_errors.ErrInvalidInput
	}
	f := people.Founder{
		ID:          uuid.New(),
		Name:        in.Name,
		Role:        in.Role,
		Description: in.Description,
		OrderIndex:  in.OrderIndex,
	}
	if err := s.repo.Create(ctx, &f); err != nil {
		return people.Founder{}, err
	}
	return f, nil
}

func (s *FounderService) List(ctx context.Context) ([]people.Founder, error) {
	return s.repo.List(ctx)
}

func (s *FounderService) Update(ctx context.Context, id uuid.UUID, in FounderInput) (people.Founder, error) {
	f := people.Founder{
		ID:          id,
		Name:        in.Name,
		Role:        in.Role,
		Description: in.Description,
		OrderIndex:  in.OrderIndex,
	}
	if strings.TrimSpace(in.Name) == "" {
		return people.Founder{}, site_errors.ErrInvalidInput
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return people.Founder{}, err
	}
	return f, nil
}

func (s *FounderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// BoardService manages board members and the board term.
type BoardService struct {
	repo repository.BoardRepository
}

func NewBoardService(repo repository.BoardRepository) *BoardService {
	return &BoardService{repo: repo}
}

type BoardMemberInput struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	PhotoData string `json:"photo_data"`
	Term      string `json:"term"`
}

type BoardTermInput struct {
	Label     string `json:"label"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

func (s *BoardService) CreateMember(ctx context.Context, in BoardMemberInput) (people.BoardMember, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Position) == "" {
		return people.BoardMember{}, site_errors.ErrInvalidInput
	}
	m := people.BoardMember{
		ID:        uuid.New(),
		Name:      in.Name,
		Position:  in.Position,
		PhotoData: in.PhotoData,
		Term:      in.Term,
	}
	if err := s.repo.CreateMember(ctx, &m); err != nil {
		return people.BoardMember{}, err
	}
	return m, nil
}

func (s *BoardService) ListMembers(ctx context.Context) ([]people.BoardMember, error) {
	return s.repo.ListMembers(ctx)
}

func (s *BoardService) UpdateMember(ctx context.Context, id uuid.UUID, in BoardMemberInput) (people.BoardMember, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Position) == "" {
		return people.BoardMember{}, site_errors.ErrInvalidInput
	}
	m := people.BoardMember{
		ID:        id,
		Name:      in.Name,
		Position:  in.Position,
		PhotoData: in.PhotoData,
		Term:      in.Term,
	}
	if err := s.repo.UpdateMember(ctx, m); err != nil {
		return people.BoardMember{}, err
	}
	return m, nil
}

func (s *BoardService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMember(ctx, id)
}

func (s *BoardService) GetTerm(ctx context.Context) (people.BoardTerm, error) {
	return s.repo.GetTerm(ctx)
}

func (s *BoardService) SetTerm(ctx context.Context, in BoardTermInput) (people.BoardTerm, error) {
	if in.StartYear == 0 || in.EndYear == 0 || in.EndYear < in.StartYear {
		return people.BoardTerm{}, site_errors.ErrInvalidInput
	}
	t := people.BoardTerm{
		ID:        uuid.New(),
		Label:     in.Label,
		StartYear: in.StartYear,
		EndYear:   in.EndYear,
	}
	if err := s.repo.SaveTerm(ctx, &t); err != nil {
		return people.BoardTerm{}, err
	}
	return t, nil
}
