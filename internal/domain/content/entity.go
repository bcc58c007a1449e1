package content

import (
	"time"

	"github.com/google/uuid"
)

// WorkProgram status values.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// HistoryEntry represents history: one milestone on the organization's
// timeline.
type HistoryEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Year        int       `gorm:"not null" json:"year"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

func (HistoryEntry) TableName() string {
	return "history"
}

// WorkProgram represents work_programs: a planned or running activity.
type WorkProgram struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Date        string    `json:"date"`
	Status      string    `gorm:"not null;default:'upcoming'" json:"status"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

func (WorkProgram) TableName() string {
	return "work_programs"
}
