package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/models"
)

// Store holds the currently published dataset. Replace swaps the whole
// dataset atomically and stamps a fresh version; readers always see a
// complete, validated snapshot. The published *Dataset is treated as
// immutable, so Snapshot can hand out the pointer directly.
type Store struct {
	mu      sync.RWMutex
	ds      *models.Dataset
	raw     []byte
	version string
	logger  *zap.SugaredLogger
}

func NewStore(logger *zap.SugaredLogger) *Store {
	return &Store{logger: logger}
}

// LoadFile reads and publishes a dataset from disk, typically at startup.
func (s *Store) LoadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read dataset file: %w", err)
	}
	version, err := s.Replace(raw)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return version, nil
}

// Replace parses, validates and publishes a new dataset. On any error the
// previously published dataset stays in place untouched.
func (s *Store) Replace(raw []byte) (string, error) {
	var ds models.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return "", fmt.Errorf("parse dataset: %w", err)
	}
	if err := Validate(&ds); err != nil {
		return "", fmt.Errorf("validate dataset: %w", err)
	}

	version := uuid.NewString()
	s.mu.Lock()
	s.ds = &ds
	s.raw = raw
	s.version = version
	s.mu.Unlock()

	s.logger.Infow("dataset published",
		"version", version,
		"players", len(ds.Players),
		"matches", len(ds.Matches),
		"batting_rows", len(ds.Batting),
		"bowling_rows", len(ds.Bowling))
	return version, nil
}

// Snapshot returns the published dataset and its version, nil and "" before
// the first successful Replace.
func (s *Store) Snapshot() (*models.Dataset, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds, s.version
}

// Raw returns the original JSON bytes of the published dataset.
func (s *Store) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds != nil
}
