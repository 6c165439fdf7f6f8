package model

import "time"

// Link is a secondary resource attached to a meeting, e.g. the join URL
// handed out to participants or an agenda document.
type Link struct {
	ID        string    `gorm:"type:CHAR(36);primaryKey" json:"id"`
	MeetingID string    `gorm:"type:CHAR(36);not null;index" json:"meeting_id"`
	URL       string    `gorm:"type:VARCHAR(2048);not null" json:"url"`
	Label     string    `gorm:"type:VARCHAR(255)" json:"label"`
	CreatedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null" json:"updated_at"`
}

func (Link) TableName() string {
	return "links"
}
