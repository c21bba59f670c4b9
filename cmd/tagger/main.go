package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/TrustTag/pkg/config"
	"github.com/NeuralTrust/TrustTag/pkg/dependency_container"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache"
	"github.com/NeuralTrust/TrustTag/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/TrustTag/pkg/infra/logger"
	_ "github.com/NeuralTrust/TrustTag/pkg/infra/migrations"
	"github.com/NeuralTrust/TrustTag/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustTag/pkg/server"
	"github.com/NeuralTrust/TrustTag/pkg/server/router"
	"github.com/joho/godotenv"
)

// @title TrustTag API
// @version 0.1.0
// @description Asset tagging, similarity and design feedback service.
// @BasePath /
func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config"
	}
	if err := config.Load(configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	logger, err := infraLogger.NewLogger(infraLogger.Options{
		Dir:     cfg.Log.Dir,
		Name:    "tagger",
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
	})

	db, err := database.NewDB(logger.Logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger.Logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("failed to build dependency container: %v", err)
	}
	defer func() {
		if err := container.Cache.Close(); err != nil {
			logger.WithError(err).Error("failed to close redis client")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		logger.Info("listening for asset cache events")
		container.RedisListener.Listen(ctx, cache.AssetEventsChannel)
	}()

	srv := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger.Logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.WithError(err).Error("server stopped unexpectedly")
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return
	}
	logger.Info("server gracefully stopped")
}
