package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080", RunMode: "debug"},
		Storage: StorageConfig{Driver: "postgres"},
		Postgres: PostgresConfig{
			Host:   "localhost",
			Port:   "5432",
			User:   "postgres",
			DbName: "convene",
		},
		Security: SecurityConfig{TokenSource: "static", CreationToken: "secret"},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_MissingPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownStorageDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "cassandra"
	assert.Error(t, cfg.Validate())
}

func TestValidate_MemoryDriverNeedsNoPostgres(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "memory"
	cfg.Postgres = PostgresConfig{}
	require.NoError(t, cfg.Validate())
}

func TestValidate_StaticTokenSourceRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Security.CreationToken = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_DatabaseTokenSourceRequiresPostgres(t *testing.T) {
	cfg := validConfig()
	cfg.Security = SecurityConfig{TokenSource: "database"}
	require.NoError(t, cfg.Validate())

	cfg.Storage.Driver = "memory"
	cfg.Postgres = PostgresConfig{}
	assert.Error(t, cfg.Validate())
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres.Password = "pw"
	cfg.Postgres.SSLMode = "disable"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=convene sslmode=disable",
		cfg.GetPostgresConnectionString())
}
