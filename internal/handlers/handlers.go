package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/dataset"
	"github.com/champions11cc/stats-api/internal/logic"
)

// MaxBodySize limits dataset uploads to 10MB
const MaxBodySize = 10 * 1024 * 1024

// RescanQueue defines the interface for the background rescan worker
type RescanQueue interface {
	Enqueue(version string) bool
	QueueDepth() int
}

// SnapshotSaver persists raw dataset uploads; nil when Postgres is not
// configured.
type SnapshotSaver interface {
	Save(ctx context.Context, version string, raw []byte) error
}

type Config struct {
	Dataset   *dataset.Store
	Snapshots SnapshotSaver
	Badges    logic.BadgeService
	Rescan    RescanQueue
	Postgres  *pgxpool.Pool
	Redis     *redis.Client
	Logger    *zap.Logger
}

type Handler struct {
	store     *dataset.Store
	snapshots SnapshotSaver
	badges    logic.BadgeService
	rescan    RescanQueue
	pg        *pgxpool.Pool
	redis     *redis.Client
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		store:     cfg.Dataset,
		snapshots: cfg.Snapshots,
		badges:    cfg.Badges,
		rescan:    cfg.Rescan,
		pg:        cfg.Postgres,
		redis:     cfg.Redis,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
