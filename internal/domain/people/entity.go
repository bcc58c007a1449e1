package people

import (
	"time"

	"github.com/google/uuid"
)

// Founder represents founders shown on the public founders page.
type Founder struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Role        string    `json:"role"`
	Description string    `gorm:"type:text" json:"description"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

func (Founder) TableName() string {
	return "founders"
}

// BoardMember represents board_members. PhotoData carries the member's
// photo inline as a base64 data URL.
type BoardMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Position  string    `gorm:"not null" json:"position"`
	PhotoData string    `gorm:"type:text" json:"photo_data"`
	Term      string    `json:"term"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

func (BoardMember) TableName() string {
	return "board_members"
}

// BoardTerm represents board_terms: the active board period label.
type BoardTerm struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Label     string    `gorm:"not null" json:"label"`
	StartYear int       `gorm:"not null" json:"start_year"`
	EndYear   int       `gorm:"not null" json:"end_year"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

func (BoardTerm) TableName() string {
	return "board_terms"
}
