package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"podhub/internal/adapter"
	"podhub/internal/adapter/rss"
	"podhub/internal/adapter/youtube"
	"podhub/internal/config"
	"podhub/internal/domain"
	"podhub/internal/queue"
	"podhub/internal/queue/rabbitmq"
	"podhub/internal/scheduler"
	"podhub/internal/service"
	"podhub/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	mq, err := rabbitmq.New(rabbitmq.Config{
		URL:            cfg.RabbitMQ.URL,
		Exchange:       cfg.RabbitMQ.Exchange,
		MaxAttempts:    cfg.RabbitMQ.MaxAttempts,
		InitialBackoff: cfg.RabbitMQ.InitialBackoff,
		MaxBackoff:     cfg.RabbitMQ.MaxBackoff,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer mq.Close()

	registry := adapter.NewRegistry()
	registry.Register(domain.SourceTypeRSS, rss.New(logger))

	if cfg.YouTube.APIKey != "" {
		ytSvc, err := ytapi.NewService(ctx, option.WithAPIKey(cfg.YouTube.APIKey))
		if err != nil {
			logger.Error("failed to create youtube client", "error", err)
			os.Exit(1)
		}
		registry.Register(domain.SourceTypeYouTube, youtube.New(ytSvc, logger))
	} else {
		logger.Warn("no youtube api key configured, youtube sources will fail to sync")
	}

	sourceStore := postgres.NewImportSourceStore(db)
	programStore := postgres.NewProgramStore(db)
	episodeStore := postgres.NewEpisodeStore(db)
	txManager := postgres.NewTransactionManager(db)

	syncService := service.NewSyncService(
		sourceStore,
		programStore,
		episodeStore,
		txManager,
		registry,
		mq,
		logger,
		cfg.Sync,
	)

	err = mq.Subscribe(ctx, queue.TopicSyncContent, func(ctx context.Context, payload []byte) error {
		var job queue.SyncContentPayload
		if err := json.Unmarshal(payload, &job); err != nil {
			return err
		}
		_, err := syncService.SyncContent(ctx, job.ID)
		return err
	})
	if err != nil {
		logger.Error("failed to subscribe to sync jobs", "error", err)
		os.Exit(1)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	sched := scheduler.NewScheduler(sourceStore, mq, cfg.Sync.Interval, logger)

	logger.Info("starting content syncer", "interval", cfg.Sync.Interval)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
