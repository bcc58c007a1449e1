package httpdto

import (
	"time"

	"orgsite-backend/internal/domain/resource"
	"orgsite-backend/internal/services"
)

type ResourceFileDTO struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
}

type ResourceDTO struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Files       []ResourceFileDTO `json:"files"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ResourceWithFilesDTO adds the upload accounting so the admin UI can
// show "N of M files uploaded".
type ResourceWithFilesDTO struct {
	ResourceDTO
	AttachedCount  int `json:"attached_count"`
	RequestedCount int `json:"requested_count"`
}

func NewResourceFileDTO(f resource.ResourceFile) ResourceFileDTO {
	return ResourceFileDTO{
		ID:        f.ID.String(),
		FileName:  f.FileName,
		FileURL:   f.FileURL,
		FileType:  f.FileType,
		CreatedAt: f.CreatedAt,
	}
}

func NewResourceDTO(r resource.Resource) ResourceDTO {
	files := make([]ResourceFileDTO, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, NewResourceFileDTO(f))
	}
	return ResourceDTO{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Files:       files,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewResourceWithFilesDTO(v services.ResourceWithFiles) ResourceWithFilesDTO {
	return ResourceWithFilesDTO{
		ResourceDTO:    NewResourceDTO(v.Resource),
		AttachedCount:  v.AttachedCount,
		RequestedCount: v.RequestedCount,
	}
}
