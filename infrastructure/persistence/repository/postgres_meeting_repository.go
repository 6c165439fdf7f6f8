package repository

import (
	"context"
	stderrors "errors"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/domain/repository"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostgresMeetingRepository struct {
	database *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) repository.MeetingRepository {
	return &PostgresMeetingRepository{database: db}
}

func (r *PostgresMeetingRepository) Create(ctx context.Context, meeting *model.Meeting) error {
	if err := r.database.WithContext(ctx).Create(meeting).Error; err != nil {
		return errors.Wrap(err, "failed to insert meeting")
	}
	return nil
}

func (r *PostgresMeetingRepository) GetByID(ctx context.Context, id string) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.database.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).
		Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMeetingNotFound
		}
		return nil, errors.Wrap(err, "failed to query meeting")
	}
	return &meeting, nil
}

func (r *PostgresMeetingRepository) GetAll(ctx context.Context) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	err := r.database.WithContext(ctx).
		Order("created_at DESC").
		Find(&meetings).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meetings")
	}
	return meetings, nil
}
