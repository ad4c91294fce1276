package handlers

import (
	"context"

	"github.com/champions11cc/stats-api/internal/models"
)

// MockBadgeService
type MockBadgeService struct {
	CatalogFunc      func() []models.BadgeDefinition
	ScanFunc         func(ctx context.Context) ([]models.ScanResult, error)
	PlayerAwardsFunc func(ctx context.Context, playerID string) ([]models.ScanResult, error)
	PreviewFunc      func(ctx context.Context, def models.BadgeDefinition) (models.ScanResult, error)
}

func (m *MockBadgeService) Catalog() []models.BadgeDefinition {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return []models.BadgeDefinition{}
}

func (m *MockBadgeService) Scan(ctx context.Context) ([]models.ScanResult, error) {
	if m.ScanFunc != nil {
		return m.ScanFunc(ctx)
	}
	return []models.ScanResult{}, nil
}

func (m *MockBadgeService) PlayerAwards(ctx context.Context, playerID string) ([]models.ScanResult, error) {
	if m.PlayerAwardsFunc != nil {
		return m.PlayerAwardsFunc(ctx, playerID)
	}
	return []models.ScanResult{}, nil
}

func (m *MockBadgeService) Preview(ctx context.Context, def models.BadgeDefinition) (models.ScanResult, error) {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, def)
	}
	return models.ScanResult{Badge: def, Recipients: []models.AwardRecipient{}}, nil
}

// MockRescanQueue
type MockRescanQueue struct {
	Enqueued []string
	Full     bool
}

func (m *MockRescanQueue) Enqueue(version string) bool {
	if m.Full {
		return false
	}
	m.Enqueued = append(m.Enqueued, version)
	return true
}

func (m *MockRescanQueue) QueueDepth() int {
	return len(m.Enqueued)
}

// MockSnapshotSaver
type MockSnapshotSaver struct {
	Saved map[string][]byte
}

func (m *MockSnapshotSaver) Save(ctx context.Context, version string, raw []byte) error {
	if m.Saved == nil {
		m.Saved = map[string][]byte{}
	}
	m.Saved[version] = raw
	return nil
}
