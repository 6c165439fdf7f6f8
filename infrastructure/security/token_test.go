package security

import (
	"context"
	"testing"
	"time"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/infrastructure/persistence/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenValidator(t *testing.T) {
	validate := StaticTokenValidator("secret-token")

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"matching token", "secret-token", true},
		{"wrong token", "other-token", false},
		{"empty token", "", false},
		{"prefix of secret", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := validate(context.Background(), tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestStaticTokenValidator_EmptySecretRejectsEverything(t *testing.T) {
	validate := StaticTokenValidator("")

	ok, err := validate(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = validate(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAPIKeyTokenValidator(t *testing.T) {
	repo := repository.NewInMemoryAPIKeyRepository()
	repo.Put(model.APIKey{
		ID:        "c3a0a7cc-0000-4000-8000-000000000002",
		Name:      "integration client",
		Key:       "issued-key",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	validate := APIKeyTokenValidator(repo)

	ok, err := validate(context.Background(), "issued-key")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validate(context.Background(), "revoked-key")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = validate(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
