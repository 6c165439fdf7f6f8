package security

import (
	"context"
	"crypto/subtle"
	stderrors "errors"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/domain/repository"
	"github.com/pkg/errors"
)

// TokenValidator decides whether a creation token authorizes a write.
// Implementations must not persist anything; a false result means the
// request is rejected before it reaches the repository.
type TokenValidator func(ctx context.Context, token string) (bool, error)

// StaticTokenValidator compares the supplied token against a single
// configured secret in constant time.
func StaticTokenValidator(secret string) TokenValidator {
	return func(ctx context.Context, token string) (bool, error) {
		if token == "" || secret == "" {
			return false, nil
		}
		return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1, nil
	}
}

// APIKeyTokenValidator accepts any token present in the api_keys store.
func APIKeyTokenValidator(repo repository.APIKeyRepository) TokenValidator {
	return func(ctx context.Context, token string) (bool, error) {
		if token == "" {
			return false, nil
		}

		_, err := repo.GetByKey(ctx, token)
		if err != nil {
			if stderrors.Is(err, model.ErrAPIKeyNotFound) {
				return false, nil
			}
			return false, errors.Wrap(err, "failed to look up api key")
		}
		return true, nil
	}
}
