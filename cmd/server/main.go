package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"game_collector/internal/config"
	"game_collector/internal/domain"
	"game_collector/internal/events"
	"game_collector/internal/fixtures"
	"game_collector/internal/handlers"
	"game_collector/internal/server"
	"game_collector/internal/service"
	"game_collector/internal/source/bgg"
	"game_collector/internal/source/steam"
	pgstore "game_collector/internal/storage/postgres"
	redisstore "game_collector/internal/storage/redis"
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

	tagCache, closeCache, err := newTagCache(cfg, logger)
	if err != nil {
		logger.Error("failed to connect tag cache", "backend", cfg.Cache.Backend, "error", err)
		os.Exit(1)
	}
	defer closeCache()

	var publisher service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := events.NewRabbitMQ(events.Config{
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
		publisher = rabbitMQ
	}

	var bggFixtures bgg.Fixtures
	var steamFixtures steam.Fixtures
	if cfg.Demo.Enabled {
		bggFixtures = fixtures.NewBGG()
		steamFixtures = fixtures.NewSteam()
		logger.Info("demo fixtures enabled")
	}

	bggClient := bgg.New(bgg.Config{
		BaseURL:     cfg.BGG.BaseURL,
		BearerToken: cfg.BGG.BearerToken,
		Timeout:     cfg.BGG.Timeout,
		MaxAttempts: cfg.BGG.Collection.MaxAttempts,
		Delay:       cfg.BGG.Collection.Delay,
	}, bggFixtures, logger)

	steamClient := steam.New(steam.Config{
		APIBaseURL:   cfg.Steam.APIBaseURL,
		StoreBaseURL: cfg.Steam.StoreBaseURL,
		APIKey:       cfg.Steam.APIKey,
		Timeout:      cfg.Steam.Timeout,
	}, steamFixtures, logger)

	boardEnricher := service.NewEnricher(
		tagCache,
		service.NewBoardResolver(bggClient, logger),
		publisher,
		domain.BoardTag,
		service.RankByRating,
		cfg.Enrich.TopN,
		logger,
	)

	digitalEnricher := service.NewEnricher(
		tagCache,
		service.NewDigitalResolver(steamClient, logger),
		publisher,
		domain.DigitalTag,
		service.RankByPlaytime,
		cfg.Enrich.TopN,
		logger,
	)

	router := mux.NewRouter()
	handlers.New(bggClient, steamClient, boardEnricher, digitalEnricher, logger).RegisterRoutes(router)

	srv := server.New(router, cfg.Server)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting collection server",
		"port", cfg.Server.Port,
		"cache_backend", cfg.Cache.Backend,
		"top_n", cfg.Enrich.TopN,
	)

	if err := srv.Start(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
}

func newTagCache(cfg *config.Config, logger *slog.Logger) (service.TagCache, func(), error) {
	switch cfg.Cache.Backend {
	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to postgres tag cache")
		return pgstore.NewTagStore(db), func() { db.Close() }, nil
	default:
		store, err := redisstore.NewTagStore(redisstore.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to redis tag cache", "address", cfg.Redis.Address)
		return store, func() { store.Close() }, nil
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
