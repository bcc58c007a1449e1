package member

import "time"

// Stats represents member_stats: a singleton row holding the membership
// numbers shown on the public site.
type Stats struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	ActiveMembers int       `gorm:"not null;default:0" json:"active_members"`
	Alumni        int       `gorm:"not null;default:0" json:"alumni"`
	TotalMembers  int       `gorm:"not null;default:0" json:"total_members"`
	UpdatedAt     time.Time `gorm:"default:now()" json:"updated_at"`
}

func (Stats) TableName() string {
	return "member_stats"
}
