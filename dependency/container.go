package dependency

import (
	"context"
	"fmt"
	"time"

	linkUseCase "github.com/convenehq/convene/application/usecases/link"
	meetingUseCase "github.com/convenehq/convene/application/usecases/meeting"
	"github.com/convenehq/convene/domain/repository"
	"github.com/convenehq/convene/infrastructure/cache"
	"github.com/convenehq/convene/infrastructure/config"
	"github.com/convenehq/convene/infrastructure/logger"
	"github.com/convenehq/convene/infrastructure/metrics"
	"github.com/convenehq/convene/infrastructure/persistence/database"
	"github.com/convenehq/convene/infrastructure/security"
	linkCtrl "github.com/convenehq/convene/presentation/controllers/link"
	meetingCtrl "github.com/convenehq/convene/presentation/controllers/meeting"
	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/sdk/trace"
)

type Container struct {
	Config *config.Config
	Logger *logger.Logger

	TracerProvider *trace.TracerProvider
	MetricsManager *metrics.Manager
	RedisEnabled   bool

	MeetingRepo repository.MeetingRepository
	LinkRepo    repository.LinkRepository
	APIKeyRepo  repository.APIKeyRepository

	TokenValidator security.TokenValidator

	MeetingUC meetingUseCase.MeetingUseCase
	LinkUC    linkUseCase.LinkUseCase

	MeetingController meetingCtrl.MeetingController
	LinkController    linkCtrl.LinkController
}

func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	loggerInstance, err := logger.NewLogger(cfg.Logger.Encoding, cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}
	c.Logger = loggerInstance

	c.Logger.Info("Initializing Convene API dependencies")

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("error initializing infrastructure: %w", err)
	}

	if err := c.initRepositories(); err != nil {
		return nil, fmt.Errorf("error initializing repositories: %w", err)
	}

	if err := c.initSecurity(); err != nil {
		return nil, fmt.Errorf("error initializing security: %w", err)
	}

	c.initUseCases()

	c.initMiddleware()

	c.initControllers()

	c.Logger.Info("All dependencies initialized successfully")

	return c, nil
}

// RedisClient exposes the shared redis client; nil when redis is disabled.
func (c *Container) RedisClient() *redis.Client {
	return cache.GetRedis()
}

// Close releases everything the container owns, in reverse order of init.
func (c *Container) Close() {
	if c.TracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.TracerProvider.Shutdown(ctx)
	}

	if c.RedisEnabled {
		cache.CloseRedis()
	}

	if c.Config.Storage.Driver == "postgres" {
		database.CloseDb()
	}

	if c.Config.Sentry.Dsn != "" {
		sentry.Flush(2 * time.Second)
	}

	_ = c.Logger.Log.Sync()
}
