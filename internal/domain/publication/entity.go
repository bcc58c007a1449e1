package publication

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Publication represents publications: a paper or report with an
// optional single PDF stored in object storage.
type Publication struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Authors   string         `gorm:"not null" json:"authors"`
	Year      int            `gorm:"not null" json:"year"`
	PDFPath   sql.NullString `json:"-"`
	PDFURL    sql.NullString `json:"pdf_url"`
	CreatedAt time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"default:now()" json:"updated_at"`
}

func (Publication) TableName() string {
	return "publications"
}
