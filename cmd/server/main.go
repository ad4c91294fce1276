package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/config"
	"github.com/champions11cc/stats-api/internal/dataset"
	"github.com/champions11cc/stats-api/internal/handlers"
	"github.com/champions11cc/stats-api/internal/logic"
	"github.com/champions11cc/stats-api/internal/worker"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := dataset.NewStore(sugar)

	// Postgres is optional; with it, the latest uploaded dataset survives a
	// restart.
	var pg *pgxpool.Pool
	var snapshots *dataset.SnapshotStore
	if cfg.PostgresURL != "" {
		pg, err = pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			sugar.Fatalw("failed to connect to postgres", "error", err)
		}
		defer pg.Close()

		snapshots = dataset.NewSnapshotStore(pg, sugar)
		if err := snapshots.EnsureSchema(ctx); err != nil {
			sugar.Fatalw("failed to prepare snapshot schema", "error", err)
		}
	}

	version := loadInitialDataset(ctx, store, snapshots, cfg.DataFile, sugar)

	// Redis is optional; with it, scan results are cached per dataset
	// version.
	var redisClient *redis.Client
	var cache logic.ScanCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("invalid redis url", "error", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
		cache = worker.NewRedisResultCache(redisClient)
	}

	scanner := logic.NewScanner(logic.DefaultCatalog(), sugar, cfg.ScanWorkers)
	badges := logic.NewBadgeService(scanner, store, cache, cfg.CacheTTL, sugar)

	rescan := worker.NewRescanWorker(badges, sugar, cfg.RescanQueueSize)
	rescan.Start()
	defer rescan.Stop()
	if version != "" {
		rescan.Enqueue(version)
	}

	hcfg := handlers.Config{
		Dataset:  store,
		Badges:   badges,
		Rescan:   rescan,
		Postgres: pg,
		Redis:    redisClient,
		Logger:   logger,
	}
	if snapshots != nil {
		hcfg.Snapshots = snapshots
	}
	handler := handlers.New(hcfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
}

// loadInitialDataset publishes the starting dataset: the most recent
// persisted snapshot when Postgres is configured, otherwise the local data
// file. Starting with no dataset at all is allowed; the first upload
// publishes one.
func loadInitialDataset(ctx context.Context, store *dataset.Store, snapshots *dataset.SnapshotStore, dataFile string, logger *zap.SugaredLogger) string {
	if snapshots != nil {
		version, raw, err := snapshots.LoadLatest(ctx)
		if err != nil {
			logger.Errorw("failed to load persisted snapshot", "error", err)
		} else if raw != nil {
			v, err := store.Replace(raw)
			if err != nil {
				logger.Errorw("persisted snapshot no longer valid", "version", version, "error", err)
			} else {
				logger.Infow("restored dataset from snapshot", "snapshot_version", version)
				return v
			}
		}
	}

	version, err := store.LoadFile(dataFile)
	if err != nil {
		logger.Warnw("no dataset at startup, waiting for upload", "file", dataFile, "error", err)
		return ""
	}
	return version
}
