package database

import (
	"github.com/convenehq/convene/infrastructure/config"
	"github.com/convenehq/convene/infrastructure/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var dbClient *gorm.DB

// InitDb opens the Postgres connection and configures the pool. Called once
// at startup; the connection is owned here, not by callers.
func InitDb(cfg *config.Config, zapLogger *zap.Logger) error {
	db, err := gorm.Open(postgres.Open(cfg.GetPostgresConnectionString()), &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger),
	})
	if err != nil {
		return errors.Wrap(err, "failed to open postgres connection")
	}

	sqlDb, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from gorm")
	}

	sqlDb.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDb.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDb.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := sqlDb.Ping(); err != nil {
		return errors.Wrap(err, "failed to ping postgres")
	}

	dbClient = db
	return nil
}

func GetDb() *gorm.DB {
	return dbClient
}

func CloseDb() {
	if dbClient == nil {
		return
	}
	if sqlDb, err := dbClient.DB(); err == nil {
		_ = sqlDb.Close()
	}
}
