package model

import "time"

// APIKey backs the database token source: each row is an opaque creation
// token handed out to an integrating client.
type APIKey struct {
	ID        string    `gorm:"type:CHAR(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:VARCHAR(255);not null" json:"name"`
	Key       string    `gorm:"type:VARCHAR(255);not null;uniqueIndex" json:"key"`
	CreatedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null" json:"updated_at"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
