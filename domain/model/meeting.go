package model

import "time"

type Meeting struct {
	ID              string     `gorm:"type:CHAR(36);primaryKey" json:"id"`
	Title           string     `gorm:"type:VARCHAR(255);not null" json:"title"`
	Description     string     `gorm:"type:TEXT" json:"description"`
	StartTime       *time.Time `gorm:"type:TIMESTAMP with time zone;null" json:"start_time"`
	EndTime         *time.Time `gorm:"type:TIMESTAMP with time zone;null" json:"end_time"`
	MaxParticipants int        `gorm:"not null;default:10" json:"max_participants"`
	CreatedAt       time.Time  `gorm:"type:TIMESTAMP with time zone;not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"type:TIMESTAMP with time zone;not null" json:"updated_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}
