package link

import "time"

type CreateLinkRequest struct {
	URL   string `json:"url" binding:"required,url,max=2048"`
	Label string `json:"label" binding:"omitempty,max=255"`
}

type LinkResponse struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	URL       string    `json:"url"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
	Count int            `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
