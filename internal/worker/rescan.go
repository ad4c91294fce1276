package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/models"
)

var (
	scansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_badge_scans_total",
		Help: "Total number of background badge scans run",
	})
	scansFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricket_badge_scans_failed_total",
		Help: "Background badge scans that returned an error",
	})
	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cricket_badge_scan_duration_seconds",
		Help:    "Wall time of one full catalog scan",
		Buckets: prometheus.DefBuckets,
	})
	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cricket_rescan_queue_depth",
		Help: "Rescan jobs waiting in the queue",
	})
	awardsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cricket_badge_awards",
		Help: "Award instances found by the most recent scan",
	})
)

// BadgeScanner is what the worker needs from the badge service.
type BadgeScanner interface {
	Scan(ctx context.Context) ([]models.ScanResult, error)
}

// RescanWorker runs full badge scans in the background after dataset
// uploads, so the first read of a new dataset version hits a warm cache.
// Jobs carry the dataset version that triggered them, for logging only.
type RescanWorker struct {
	badges BadgeScanner
	logger *zap.SugaredLogger
	ctx    context.Context
	cancel context.CancelFunc
	jobs   chan string
	wg     sync.WaitGroup
}

func NewRescanWorker(badges BadgeScanner, logger *zap.SugaredLogger, queueSize int) *RescanWorker {
	if queueSize <= 0 {
		queueSize = 16
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RescanWorker{
		badges: badges,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(chan string, queueSize),
	}
}

// Start begins the rescan worker
func (w *RescanWorker) Start() {
	w.logger.Info("Rescan worker started")
	w.wg.Add(1)
	go w.run()
}

// Stop gracefully stops the worker
func (w *RescanWorker) Stop() {
	w.cancel()
	close(w.jobs)
	w.wg.Wait()
	w.logger.Info("Rescan worker stopped")
}

// Enqueue schedules a rescan for a dataset version. When the queue is full
// the job is dropped; every scan covers the whole current dataset, so a
// later job supersedes a dropped one.
func (w *RescanWorker) Enqueue(version string) bool {
	select {
	case w.jobs <- version:
		queueDepth.Set(float64(len(w.jobs)))
		return true
	default:
		w.logger.Warnw("rescan queue full, dropping job", "version", version)
		return false
	}
}

func (w *RescanWorker) QueueDepth() int {
	return len(w.jobs)
}

func (w *RescanWorker) run() {
	defer w.wg.Done()
	for {
		select {
		case version, ok := <-w.jobs:
			if !ok {
				return
			}
			queueDepth.Set(float64(len(w.jobs)))
			w.scan(version)
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *RescanWorker) scan(version string) {
	start := time.Now()
	results, err := w.badges.Scan(w.ctx)
	scansTotal.Inc()
	scanDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		scansFailed.Inc()
		w.logger.Errorw("background badge scan failed", "version", version, "error", err)
		return
	}

	awards := 0
	for _, res := range results {
		awards += len(res.Recipients)
	}
	awardsTotal.Set(float64(awards))
	w.logger.Infow("background badge scan complete",
		"version", version,
		"badges", len(results),
		"awards", awards,
		"duration", time.Since(start))
}
