package repository

import (
	"context"
	stderrors "errors"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/domain/repository"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostgresAPIKeyRepository struct {
	database *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &PostgresAPIKeyRepository{database: db}
}

func (r *PostgresAPIKeyRepository) GetByKey(ctx context.Context, key string) (*model.APIKey, error) {
	var apiKey model.APIKey
	err := r.database.WithContext(ctx).
		Where("key = ?", key).
		First(&apiKey).
		Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAPIKeyNotFound
		}
		return nil, errors.Wrap(err, "failed to query api key")
	}
	return &apiKey, nil
}
