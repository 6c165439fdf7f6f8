package repository

import (
	"context"

	"github.com/convenehq/convene/domain/model"
)

type APIKeyRepository interface {
	GetByKey(ctx context.Context, key string) (*model.APIKey, error)
}
