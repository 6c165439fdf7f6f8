package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/convenehq/convene/dependency"
	"github.com/convenehq/convene/infrastructure/config"
	"github.com/convenehq/convene/infrastructure/metrics"
	"github.com/convenehq/convene/presentation/controllers/health"
	"github.com/convenehq/convene/presentation/middlewares"
	"github.com/convenehq/convene/presentation/routes"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.GetConfig()

	container, err := dependency.NewContainer(cfg)
	if err != nil {
		log.Fatalf("error initializing dependencies: %v", err)
	}
	defer container.Close()

	logger := container.Logger
	logger.Info("Starting Convene API")

	switch cfg.Server.RunMode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.GinLogger(logger))
	router.Use(middlewares.CorsMiddleware(cfg))
	router.Use(middlewares.TracingMiddleware())
	router.Use(container.MetricsManager.Middleware())

	if cfg.Sentry.Dsn != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	router.GET("/", health.Greeting)
	router.GET("/health", health.Health)

	metrics.GetHandler(router.Group(""), container.MetricsManager)

	api := router.Group("")
	if container.RedisEnabled {
		api.Use(middlewares.RateLimiterMiddleware(
			container.RedisClient(),
			logger,
			middlewares.ModerateRateLimiterConfig(),
		))
	}

	routes.MeetingRoutes(api, container.MeetingController)
	routes.LinkRoutes(api, container.LinkController)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("mode", cfg.Server.RunMode),
			zap.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
