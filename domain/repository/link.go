package repository

import (
	"context"

	"github.com/convenehq/convene/domain/model"
)

type LinkRepository interface {
	Create(ctx context.Context, link *model.Link) error
	GetByID(ctx context.Context, id string) (*model.Link, error)
	GetAllByMeetingID(ctx context.Context, meetingID string) ([]*model.Link, error)
}
