package services

import (
	"context"
	"strings"

	"orgsite-backend/internal/domain/content"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
)

// HistoryService manages the organization's timeline entries.
type HistoryService struct {
	repo repository.HistoryRepository
}

func NewHistoryService(repo repository.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

type HistoryInput struct {
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *HistoryService) Create(ctx context.Context, in HistoryInput) (content.HistoryEntry, error) {
	if strings.TrimSpace(in.Title) == "" || in.Year == 0 {
		return content.HistoryEntry{}, site_errors.ErrInvalidInput
	}
	h := content.HistoryEntry{
		ID:          uuid.New(),
		Year:        in.Year,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, &h); err != nil {
		return content.HistoryEntry{}, err
	}
	return h, nil
}

func (s *HistoryService) List(ctx context.Context) ([]content.HistoryEntry, error) {
	return s.repo.List(ctx)
}

func (s *HistoryService) Update(ctx context.Context, id uuid.UUID, in HistoryInput) (content.HistoryEntry, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return content.HistoryEntry{}, err
	}
	if in.Year != 0 {
		h.Year = in.Year
	}
	if strings.TrimSpace(in.Title) != "" {
		h.Title = in.Title
	}
	if in.Description != "" {
		h.Description = in.Description
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return content.HistoryEntry{}, err
	}
	return h, nil
}

func (s *HistoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// WorkProgramService manages work programs.
type WorkProgramService struct {
	repo repository.WorkProgramRepository
}

func NewWorkProgramService(repo repository.WorkProgramRepository) *WorkProgramService {
	return &WorkProgramService{repo: repo}
}

type WorkProgramInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

func validProgramStatus(status string) bool {
	switch status {
	case content.StatusUpcoming, content.StatusOngoing, content.StatusCompleted:
		return true
	}
	return false
}

func (s *WorkProgramService) Create(ctx context.Context, in WorkProgramInput) (content.WorkProgram, error) {
	if strings.TrimSpace(in.Name) == "" {
		return content.WorkProgram{}, site_errors.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = content.StatusUpcoming
	}
	if !validProgramStatus(status) {
		return content.WorkProgram{}, site_errors.ErrInvalidInput
	}
	p := content.WorkProgram{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Status:      status,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return content.WorkProgram{}, err
	}
	return p, nil
}

func (s *WorkProgramService) List(ctx context.Context) ([]content.WorkProgram, error) {
	return s.repo.List(ctx)
}

func (s *WorkProgramService) Update(ctx context.Context, id uuid.UUID, in WorkProgramInput) (content.WorkProgram, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return content.WorkProgram{}, err
	}
	if strings.TrimSpace(in.Name) != "" {
		p.Name = in.Name
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.Date != "" {
		p.Date = in.Date
	}
	if in.Status != "" {
		if !validProgramStatus(in.Status) {
			return content.WorkProgram{}, site_errors.ErrInvalidInput
		}
		p.Status = in.Status
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return content.WorkProgram{}, err
	}
	return p, nil
}

func (s *WorkProgramService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
