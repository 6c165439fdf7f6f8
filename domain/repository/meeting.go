package repository

import (
	"context"

	"github.com/convenehq/convene/domain/model"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *model.Meeting) error
	GetByID(ctx context.Context, id string) (*model.Meeting, error)
	GetAll(ctx context.Context) ([]*model.Meeting, error)
}
