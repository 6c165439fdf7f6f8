package meeting

import "time"

type CreateMeetingRequest struct {
	Title           string     `json:"title" binding:"required,max=255"`
	Description     string     `json:"description" binding:"omitempty,max=4096"`
	StartTime       *time.Time `json:"start_time" binding:"omitempty"`
	EndTime         *time.Time `json:"end_time" binding:"omitempty"`
	MaxParticipants int        `json:"max_participants" binding:"omitempty,min=1,max=100"`
}

type MeetingResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	MaxParticipants int        `json:"max_participants"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Count    int               `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
