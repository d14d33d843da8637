package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"housing_signals/internal/config"
	"housing_signals/internal/publisher"
	"housing_signals/internal/rawstore"
	"housing_signals/internal/scheduler"
	"housing_signals/internal/service"
	"housing_signals/internal/source"
	"housing_signals/internal/source/trends"
	"housing_signals/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	keysFlag := flag.String("keys", "", "comma-separated term keys (default: all configured)")
	full := flag.Bool("full", false, "ignore checkpoints and fetch the full lookback")
	test := flag.Bool("test", false, "reduced-window run; checkpoints are not written")
	startFlag := flag.String("start", "", "explicit window start (YYYY-MM-DD)")
	endFlag := flag.String("end", "", "explicit window end (YYYY-MM-DD)")
	interval := flag.Duration("interval", 0, "re-run on this interval instead of exiting")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	opts, err := buildRunOptions(*keysFlag, *full, *test, *startFlag, *endFlag)
	if err != nil {
		logger.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	// Initialize RabbitMQ publisher (optional)
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Initialize stores
	trendStore := postgres.NewTrendStore(db)
	checkpointStore := postgres.NewCheckpointStore(db)
	txManager := postgres.NewTransactionManager(db)

	rawStore, err := rawstore.New(cfg.RawDir)
	if err != nil {
		logger.Error("failed to open raw store", "error", err)
		os.Exit(1)
	}

	// Initialize trends source
	trendsSource := trends.New(trends.Config{
		BaseURL:        cfg.Trends.BaseURL,
		Geo:            cfg.Trends.Geo,
		Timeout:        cfg.Trends.Timeout,
		RateLimitDelay: cfg.Trends.RateLimitDelay,
		Retry: source.RetryPolicy{
			MaxAttempts:    cfg.Trends.Retry.MaxAttempts,
			InitialBackoff: cfg.Trends.Retry.InitialBackoff,
			MaxBackoff:     cfg.Trends.Retry.MaxBackoff,
		},
	}, logger)

	syncService := service.NewTrendsSyncService(
		trendsSource,
		trendStore,
		checkpointStore,
		txManager,
		service.WrapRawStore(rawStore),
		pub,
		logger,
		cfg.Trends,
	)

	logger.Info("starting trends syncer",
		"mode", opts.Mode.String(),
		"terms", len(cfg.Trends.Terms),
		"geo", cfg.Trends.Geo,
		"interval", *interval,
	)

	if *interval > 0 {
		sched := scheduler.NewScheduler(syncService, opts, *interval, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	stats, err := syncService.Sync(ctx, opts)
	if err != nil {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}
	if len(stats.Failed()) > 0 {
		os.Exit(1)
	}
}

func buildRunOptions(keys string, full, test bool, start, end string) (service.RunOptions, error) {
	opts := service.RunOptions{}

	switch {
	case full && test:
		return opts, fmt.Errorf("-full and -test are mutually exclusive")
	case test:
		opts.Mode = service.ModeTest
	case full:
		opts.Mode = service.ModeFull
	}

	if keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				opts.Keys = append(opts.Keys, k)
			}
		}
	}

	var err error
	if start != "" {
		if opts.Start, err = time.Parse("2006-01-02", start); err != nil {
			return opts, err
		}
	}
	if end != "" {
		if opts.End, err = time.Parse("2006-01-02", end); err != nil {
			return opts, err
		}
	}
	return opts, nil
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
