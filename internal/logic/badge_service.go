package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/models"
)

// DatasetSource yields the current published dataset and its version tag.
type DatasetSource interface {
	Snapshot() (*models.Dataset, string)
}

// ScanCache stores serialized scan results keyed by dataset version. Get
// returns ErrCacheMiss when the key is absent.
type ScanCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ErrCacheMiss is the sentinel a ScanCache returns for an absent key.
var ErrCacheMiss = errors.New("scan cache miss")

// ErrNoDataset is returned when no dataset has been published yet.
var ErrNoDataset = errors.New("no dataset loaded")

// BadgeService is the award surface the handlers and the rescan worker
// consume.
type BadgeService interface {
	Catalog() []models.BadgeDefinition
	Scan(ctx context.Context) ([]models.ScanResult, error)
	PlayerAwards(ctx context.Context, playerID string) ([]models.ScanResult, error)
	Preview(ctx context.Context, def models.BadgeDefinition) (models.ScanResult, error)
}

type badgeService struct {
	scanner *Scanner
	source  DatasetSource
	cache   ScanCache
	ttl     time.Duration
	logger  *zap.SugaredLogger
}

// NewBadgeService wires a scanner to a dataset source. cache may be nil, in
// which case every Scan recomputes.
func NewBadgeService(scanner *Scanner, source DatasetSource, cache ScanCache, ttl time.Duration, logger *zap.SugaredLogger) BadgeService {
	return &badgeService{scanner: scanner, source: source, cache: cache, ttl: ttl, logger: logger}
}

func (s *badgeService) Catalog() []models.BadgeDefinition {
	return s.scanner.Catalog()
}

// Scan runs the full catalog against the current dataset. Results are cached
// per dataset version so repeated reads between uploads hit the cache; a
// cache failure degrades to a recompute, never an error.
func (s *badgeService) Scan(ctx context.Context) ([]models.ScanResult, error) {
	ds, version := s.source.Snapshot()
	if ds == nil {
		return nil, ErrNoDataset
	}

	key := cacheKey(version)
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err == nil {
			var cached []models.ScanResult
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
			s.logger.Warnw("discarding undecodable cached scan", "key", key)
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warnw("scan cache read failed", "key", key, "error", err)
		}
	}

	results := s.scanner.Scan(ctx, ds)

	if s.cache != nil {
		raw, err := json.Marshal(results)
		if err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
				s.logger.Warnw("scan cache write failed", "key", key, "error", err)
			}
		}
	}
	return results, nil
}

// PlayerAwards filters a full scan down to one player's badges. Badges the
// player has not earned are dropped entirely.
func (s *badgeService) PlayerAwards(ctx context.Context, playerID string) ([]models.ScanResult, error) {
	results, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	pid := strings.TrimSpace(playerID)
	out := []models.ScanResult{}
	for _, res := range results {
		mine := []models.AwardRecipient{}
		for _, r := range res.Recipients {
			if r.PlayerID == pid {
				mine = append(mine, r)
			}
		}
		if len(mine) > 0 {
			out = append(out, models.ScanResult{Badge: res.Badge, Recipients: mine})
		}
	}
	return out, nil
}

// Preview evaluates a candidate badge definition without adding it to the
// catalog or touching the cache.
func (s *badgeService) Preview(ctx context.Context, def models.BadgeDefinition) (models.ScanResult, error) {
	ds, _ := s.source.Snapshot()
	if ds == nil {
		return models.ScanResult{}, ErrNoDataset
	}
	return s.scanner.ScanOne(ctx, ds, def), nil
}

func cacheKey(version string) string {
	return fmt.Sprintf("badge_scan:%s", version)
}
