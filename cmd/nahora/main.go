package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/nahora-delivery/nahora/internal/app"
	"github.com/nahora-delivery/nahora/internal/auth"
	"github.com/nahora-delivery/nahora/internal/catalog"
	"github.com/nahora-delivery/nahora/internal/health"
	"github.com/nahora-delivery/nahora/internal/media"
	"github.com/nahora-delivery/nahora/internal/orders"
	"github.com/nahora-delivery/nahora/internal/settings"
	"github.com/nahora-delivery/nahora/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	poolCfg, err := pgxpool.ParseConfig(cfg.PGDSN)
	if err != nil {
		logger.Error("parse postgres dsn", slog.Any("error", err))
		os.Exit(1)
	}
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		logger.Warn("postgres connectivity check", slog.Any("error", err))
	} else {
		logger.Info("postgres connected", slog.String("database", dbName))
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Warn("asynq close", slog.Any("error", err))
		}
	}()

	storage, err := media.NewStorage(cfg.MediaBackend, media.Options{
		UploadsDir: cfg.UploadsDir,
		CloudName:  cfg.CloudinaryCloudName,
		APIKey:     cfg.CloudinaryAPIKey,
		APISecret:  cfg.CloudinaryAPISecret,
		Folder:     cfg.CloudinaryFolder,
	}, logger)
	if err != nil {
		logger.Error("init media storage", slog.Any("error", err))
		os.Exit(1)
	}

	catalogService := catalog.NewService(catalog.NewRepository(pool), storage, jobs.NewEnqueuer(asynqClient), logger)
	catalogHandler := catalog.NewHandler(logger, catalogService, cfg.MaxUploadBytes)

	ordersService := orders.NewService(orders.NewRepository(pool), logger)
	ordersHandler := orders.NewHandler(logger, ordersService)

	settingsService := settings.NewService(
		settings.NewRepository(pool),
		settings.NewCache(redisClient, cfg.SettingsCacheTTL),
		logger,
	)
	settingsHandler := settings.NewHandler(logger, settingsService)

	authHandler := auth.NewHandler(logger, auth.NewService(auth.NewRepository(pool)))
	healthHandler := health.NewHandler(logger, pool, health.RedisPinger(redisClient))

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		CatalogHandler:  catalogHandler,
		OrdersHandler:   ordersHandler,
		SettingsHandler: settingsHandler,
		AuthHandler:     authHandler,
		HealthHandler:   healthHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
