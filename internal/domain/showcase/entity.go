package showcase

import (
	"time"

	"github.com/google/uuid"
)

// Achievement represents achievements. ImageData carries the image
// inline as a base64 data URL.
type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Year        int       `gorm:"not null" json:"year"`
	ImageData   string    `gorm:"type:text" json:"image_data"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// Merchandise represents merchandise sold by the organization.
type Merchandise struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null;default:0" json:"price"`
	ImageData   string    `gorm:"type:text" json:"image_data"`
	OrderLink   string    `json:"order_link"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

func (Merchandise) TableName() string {
	return "merchandise"
}
