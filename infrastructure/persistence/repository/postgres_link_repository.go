package repository

import (
	"context"
	stderrors "errors"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/domain/repository"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostgresLinkRepository struct {
	database *gorm.DB
}

func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &PostgresLinkRepository{database: db}
}

func (r *PostgresLinkRepository) Create(ctx context.Context, link *model.Link) error {
	if err := r.database.WithContext(ctx).Create(link).Error; err != nil {
		return errors.Wrap(err, "failed to insert link")
	}
	return nil
}

func (r *PostgresLinkRepository) GetByID(ctx context.Context, id string) (*model.Link, error) {
	var link model.Link
	err := r.database.WithContext(ctx).
		Where("id = ?", id).
		First(&link).
		Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrLinkNotFound
		}
		return nil, errors.Wrap(err, "failed to query link")
	}
	return &link, nil
}

func (r *PostgresLinkRepository) GetAllByMeetingID(ctx context.Context, meetingID string) ([]*model.Link, error) {
	var links []*model.Link
	err := r.database.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&links).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}
	return links, nil
}
