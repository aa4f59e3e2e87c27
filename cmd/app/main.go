package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/logsink"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	health := map[string]httpin.HealthCheck{"postgres": sqlDB.PingContext}

	var cache ports.TrackingCache
	if configs.RedisAddr != "" {
		trackingCache := redis.NewTrackingCache(configs.RedisAddr, configs.TrackingCacheTTL)
		defer trackingCache.Close()
		cache = trackingCache
		health["redis"] = trackingCache.Ping
	} else {
		logger.Warn("REDIS_ADDR is not set, tracking cache disabled")
	}

	var events cmd.EventSink
	if len(configs.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(configs.KafkaBrokers, configs.KafkaQueueSize, logger)
		defer producer.Close()
		events = kafka.NewEventSink(producer, configs.KafkaNotificationTopic, configs.KafkaAuditTopic)
	} else {
		logger.Warn("KAFKA_BROKERS is not set, events are written to the log")
		events = logsink.New(logger)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, cache, events, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, health, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newLogger(configs cmd.Config) *slog.Logger {
	var handler slog.Handler
	if configs.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func startWebServer(
	ctx context.Context,
	app cmd.CompositionRoot,
	configs cmd.Config,
	health map[string]httpin.HealthCheck,
	logger *slog.Logger,
) {
	e := echo.New()
	e.HideBanner = true
	e.Use(httpin.Middleware(logger)...)

	server := httpin.NewServer(app.HTTPHandlers(), health, logger)
	server.Register(e, configs.TrackingRatePerMinute)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
