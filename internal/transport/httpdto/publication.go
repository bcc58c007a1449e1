package httpdto

import (
	"time"

	"orgsite-backend/internal/domain/publication"
)

type PublicationDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Authors   string    `json:"authors"`
	Year      int       `json:"year"`
	PDFURL    *string   `json:"pdf_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPublicationDTO(p publication.Publication) PublicationDTO {
	dto := PublicationDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Authors:   p.Authors,
		Year:      p.Year,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.PDFURL.Valid {
		url := p.PDFURL.String
		dto.PDFURL = &url
	}
	return dto
}

func NewPublicationDTOs(items []publication.Publication) []PublicationDTO {
	out := make([]PublicationDTO, 0, len(items))
	for _, p := range items {
		out = append(out, NewPublicationDTO(p))
	}
	return out
}
