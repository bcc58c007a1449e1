package services

import (
	"context"
	"strings"

	"orgsite-backend/internal/domain/showcase"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/google/uuid"
)

// AchievementService manages achievements shown on the public site.
type AchievementService struct {
	repo repository.AchievementRepository
}

func NewAchievementService(repo repository.AchievementRepository) *AchievementService {
	return &AchievementService{repo: repo}
}

type AchievementInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	ImageData   string `json:"image_data"`
}

func (s *AchievementService) Create(ctx context.Context, in AchievementInput) (showcase.Achievement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return showcase.Achievement{}, site_errors.ErrInvalidInput
	}
	a := showcase.Achievement{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Year:        in.Year,
		ImageData:   in.ImageData,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return showcase.Achievement{}, err
	}
	return a, nil
}

func (s *AchievementService) List(ctx context.Context) ([]showcase.Achievement, error) {
	return s.repo.List(ctx)
}

func (s *AchievementService) Update(ctx context.Context, id uuid.UUID, in AchievementInput) (showcase.Achievement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return showcase.Achievement{}, site_errors.ErrInvalidInput
	}
	a := showcase.Achievement{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Year:        in.Year,
		ImageData:   in.ImageData,
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return showcase.Achievement{}, err
	}
	return a, nil
}

func (s *AchievementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// MerchandiseService manages merchandise records.
type MerchandiseService struct {
	repo repository.MerchandiseRepository
}

func NewMerchandiseService(repo repository.MerchandiseRepository) *MerchandiseService {
	return &MerchandiseService{repo: repo}
}

type MerchandiseInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageData   string `json:"image_data"`
	OrderLink   string `json:"order_link"`
}

func (s *MerchandiseService) Create(ctx context.Context, in MerchandiseInput) (showcase.Merchandise, error) {
	if strings.TrimSpace(in.Name) == "" {
		return showcase.Merchandise{}, site_errors.ErrInvalidInput
	}
	m := showcase.Merchandise{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageData:   in.ImageData,
		OrderLink:   in.OrderLink,
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return showcase.Merchandise{}, err
	}
	return m, nil
}

func (s *MerchandiseService) List(ctx context.Context) ([]showcase.Merchandise, error) {
	return s.repo.List(ctx)
}

func (s *MerchandiseService) Update(ctx context.Context, id uuid.UUID, in MerchandiseInput) (showcase.Merchandise, error) {
	if strings.TrimSpace(in.Name) == "" {
		return showcase.Merchandise{}, site_errors.ErrInvalidInput
	}
	m := showcase.Merchandise{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageData:   in.ImageData,
		OrderLink:   in.OrderLink,
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return showcase.Merchandise{}, err
	}
	return m, nil
}

func (s *MerchandiseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
