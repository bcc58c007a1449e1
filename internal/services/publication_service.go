package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"orgsite-backend/internal/domain/publication"
	"orgsite-backend/internal/repository"
	site_errors "orgsite-backend/pkg/errors"
	"orgsite-backend/pkg/logger"

	"github.com/google/uuid"
)

// PublicationService manages publications and their single optional
// PDF. The PDF follows the same storage-path derivation as resource
// attachments; replacing it deletes the previous blob.
type PublicationService struct {
	repo    repository.PublicationRepository
	storage ObjectStorage
	logger  *logger.Logger
}

func NewPublicationService(repo repository.PublicationRepository, storage ObjectStorage, l *logger.Logger) *PublicationService {
	return &PublicationService{repo: repo, storage: storage, logger: l}
}

type PublicationInput struct {
	Title   string
	Authors string
	Year    int
}

func (s *PublicationService) Create(ctx context.Context, in PublicationInput, pdf *UploadedFile) (publication.Publication, error) {
	if strings.TrimSpace(in.Title) == "" {
		return publication.Publication{}, site_errors.ErrInvalidInput
	}

	p := publication.Publication{
		ID:      uuid.New(),
		Title:   in.Title,
		Authors: in.Authors,
		Year:    in.Year,
	}

	if pdf != nil {
		key := BuildStoragePath(pdf.Name)
		if err := s.storage.Put(ctx, key, pdf.Data, pdf.ContentType); err != nil {
			return publication.Publication{}, site_errors.ErrNotUploaded
		}
		p.PDFPath = sql.NullString{String: key, Valid: true}
		p.PDFURL = sql.NullString{String: s.storage.FileURL(key), Valid: true}
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return publication.Publication{}, err
	}
	return p, nil
}

func (s *PublicationService) Update(ctx context.Context, id uuid.UUID, in PublicationInput, pdf *UploadedFile) (publication.Publication, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return publication.Publication{}, err
	}

	if strings.TrimSpace(in.Title) != "" {
		p.Title = in.Title
	}
	if strings.TrimSpace(in.Authors) != "" {
		p.Authors = in.Authors
	}
	if in.Year != 0 {
		p.Year = in.Year
	}

	if pdf != nil {
		if p.PDFPath.Valid {
			if err := s.storage.Remove(ctx, p.PDFPath.String); err != nil {
				s.logger.Warnf("failed to remove blob %s: %v", p.PDFPath.String, err)
			}
		}
		key := BuildStoragePath(pdf.Name)
		if err := s.storage.Put(ctx, key, pdf.Data, pdf.ContentType); err != nil {
			return publication.Publication{}, site_errors.ErrNotUploaded
		}
		p.PDFPath = sql.NullString{String: key, Valid: true}
		p.PDFURL = sql.NullString{String: s.storage.FileURL(key), Valid: true}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return publication.Publication{}, err
	}
	return p, nil
}

func (s *PublicationService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, site_errors.ErrNotFound) {
			return nil
		}
		return err
	}
	if p.PDFPath.Valid {
		if err := s.storage.Remove(ctx, p.PDFPath.String); err != nil {
			s.logger.Warnf("failed to remove blob %s: %v", p.PDFPath.String, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *PublicationService) List(ctx context.Context) ([]publication.Publication, error) {
	return s.repo.List(ctx)
}

func (s *PublicationService) GetByID(ctx context.Context, id uuid.UUID) (publication.Publication, error) {
	return s.repo.GetByID(ctx, id)
}
