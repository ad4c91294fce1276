package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/models"
)

// MockBadgeScanner counts scans and can fail on demand
type MockBadgeScanner struct {
	mu      sync.Mutex
	scans   int
	fail    bool
	results []models.ScanResult
	done    chan struct{}
}

func (m *MockBadgeScanner) Scan(ctx context.Context) ([]models.ScanResult, error) {
	m.mu.Lock()
	m.scans++
	m.mu.Unlock()
	if m.done != nil {
		defer func() { m.done <- struct{}{} }()
	}
	if m.fail {
		return nil, errors.New("scan blew up")
	}
	return m.results, nil
}

func (m *MockBadgeScanner) ScanCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scans
}

func TestRescanWorker_ProcessesJobs(t *testing.T) {
	scanner := &MockBadgeScanner{
		done: make(chan struct{}, 4),
		results: []models.ScanResult{
			{Badge: models.BadgeDefinition{ID: "b1"}, Recipients: []models.AwardRecipient{{PlayerID: "P1"}}},
		},
	}
	w := NewRescanWorker(scanner, zap.NewNop().Sugar(), 4)
	w.Start()
	defer w.Stop()

	if !w.Enqueue("v1") {
		t.Fatal("Enqueue should accept with room in the queue")
	}
	if !w.Enqueue("v2") {
		t.Fatal("Enqueue should accept a second job")
	}

	for i := 0; i < 2; i++ {
		select {
		case <-scanner.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for scan %d", i+1)
		}
	}
	if got := scanner.ScanCount(); got != 2 {
		t.Errorf("scans = %d, want 2", got)
	}
}

func TestRescanWorker_ShedsWhenFull(t *testing.T) {
	// Worker never started: jobs sit in the queue until it fills.
	w := NewRescanWorker(&MockBadgeScanner{}, zap.NewNop().Sugar(), 2)

	if !w.Enqueue("v1") || !w.Enqueue("v2") {
		t.Fatal("queue of 2 should take two jobs")
	}
	if w.Enqueue("v3") {
		t.Error("full queue should shed the job, not block")
	}
	if w.QueueDepth() != 2 {
		t.Errorf("QueueDepth = %d, want 2", w.QueueDepth())
	}
}

func TestRescanWorker_SurvivesScanFailure(t *testing.T) {
	scanner := &MockBadgeScanner{fail: true, done: make(chan struct{}, 4)}
	w := NewRescanWorker(scanner, zap.NewNop().Sugar(), 4)
	w.Start()
	defer w.Stop()

	w.Enqueue("v1")
	select {
	case <-scanner.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for failing scan")
	}

	// The worker keeps consuming after a failure.
	w.Enqueue("v2")
	select {
	case <-scanner.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped after a scan failure")
	}
}
