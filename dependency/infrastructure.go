package dependency

import (
	"github.com/convenehq/convene/infrastructure/cache"
	"github.com/convenehq/convene/infrastructure/metrics"
	"github.com/convenehq/convene/infrastructure/persistence/database"
	"github.com/convenehq/convene/infrastructure/persistence/migration"
	"github.com/convenehq/convene/infrastructure/tracing"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

func (c *Container) initInfrastructure() error {
	if c.Config.Sentry.Dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:   c.Config.Sentry.Dsn,
			Debug: c.Config.Sentry.Debug,
		})
		if err != nil {
			c.Logger.Error("failed to initialize Sentry", zap.Error(err))
		} else {
			c.Logger.Info("Sentry initialized successfully")
		}
	}

	if c.Config.Jaeger.Endpoint != "" {
		tracerProvider, err := tracing.InitJaegerExporter(c.Config)
		if err != nil {
			c.Logger.Error("failed to initialize Jaeger exporter", zap.Error(err))
			c.Logger.Warn("Using noop tracer provider as fallback")
		} else {
			c.TracerProvider = tracerProvider
			c.Logger.Info("Jaeger exporter initialized successfully",
				zap.String("endpoint", c.Config.Jaeger.Endpoint),
				zap.String("service", c.Config.Jaeger.ServiceName),
			)
		}
	}

	serviceName := c.Config.Jaeger.ServiceName
	if serviceName == "" {
		serviceName = "convene-api"
	}
	c.MetricsManager = metrics.NewManager(serviceName)
	c.Logger.Info("Metrics initialized successfully")

	if c.Config.Redis.Host != "" {
		if err := cache.InitRedis(c.Config); err != nil {
			c.Logger.Error("failed to initialize redis, rate limiting disabled", zap.Error(err))
		} else {
			c.RedisEnabled = true
			c.Logger.Info("Redis initialized successfully", zap.String("addr", c.Config.GetRedisAddress()))
		}
	}

	if c.Config.Storage.Driver == "postgres" {
		if err := database.InitDb(c.Config, c.Logger.Log); err != nil {
			return err
		}
		migration.Up1()
		c.Logger.Info("Postgres initialized successfully",
			zap.String("host", c.Config.Postgres.Host),
			zap.String("database", c.Config.Postgres.DbName),
		)
	}

	return nil
}
