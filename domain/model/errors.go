package model

import "errors"

var (
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrLinkNotFound         = errors.New("link not found")
	ErrAPIKeyNotFound       = errors.New("api key not found")
	ErrInvalidCreationToken = errors.New("invalid creation token")
)
