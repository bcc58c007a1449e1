package resource

import (
	"time"

	"github.com/google/uuid"
)

// Category values accepted for a resource.
const (
	CategoryOfficial = "official"
	CategoryOther    = "other"
)

// Resource represents resources: a downloadable content record that owns
// zero or more attached files.
type Resource struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"not null;default:'other'" json:"category"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`

	Files []ResourceFile `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"files"`
}

func (Resource) TableName() string {
	return "resources"
}

// ResourceFile represents resource_files: one uploaded blob's metadata,
// linked to exactly one resource. StoragePath is the object key under
// which the bytes live; FileURL is the publicly resolvable address.
type ResourceFile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResourceID  uuid.UUID `gorm:"type:uuid;not null;index" json:"resource_id"`
	FileName    string    `gorm:"not null" json:"file_name"`
	StoragePath string    `gorm:"not null;uniqueIndex" json:"storage_path"`
	FileURL     string    `gorm:"not null" json:"file_url"`
	FileType    string    `gorm:"not null" json:"file_type"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

func (ResourceFile) TableName() string {
	return "resource_files"
}
