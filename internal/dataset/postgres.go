package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SnapshotStore persists raw dataset uploads so the service survives a
// restart without re-uploading. It stores the verbatim JSON; parsing and
// validation stay with the in-memory Store.
type SnapshotStore struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewSnapshotStore(pg PgPool, logger *zap.SugaredLogger) *SnapshotStore {
	return &SnapshotStore{pg: pg, logger: logger}
}

func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pg.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS cricket_dataset_snapshots (
			version    TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Save(ctx context.Context, version string, raw []byte) error {
	_, err := s.pg.Exec(ctx, `
		INSERT INTO cricket_dataset_snapshots (version, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (version) DO NOTHING
	`, version, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", version, err)
	}
	s.logger.Infow("dataset snapshot persisted", "version", version, "bytes", len(raw))
	return nil
}

// LoadLatest returns the most recent snapshot, or ("", nil, nil) when none
// has been saved yet.
func (s *SnapshotStore) LoadLatest(ctx context.Context) (string, []byte, error) {
	var version string
	var raw []byte
	err := s.pg.QueryRow(ctx, `
		SELECT version, payload
		FROM cricket_dataset_snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&version, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	return version, raw, nil
}
