package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/config"
)

// WorkerPool manages the workers of one queue.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	queueName string
	handler   Handler
	throttle  ThrottleFunc

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// PoolOption configures a WorkerPool.
type PoolOption func(*WorkerPool)

// WithThrottleFunc attaches a dynamic dispatch throttle, retuned before
// each claim.
func WithThrottleFunc(throttle ThrottleFunc) PoolOption {
	return func(p *WorkerPool) { p.throttle = throttle }
}

// NewWorkerPool creates a worker pool for one queue.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, queueName string, handler Handler, opts ...PoolOption) *WorkerPool {
	if handler == nil {
		panic("NewWorkerPool: handler is required")
	}
	p := &WorkerPool{
		podID:     podID,
		client:    client,
		config:    cfg,
		queueName: queueName,
		handler:   handler,
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workers = make([]*Worker, 0, cfg.WorkersFor(queueName))
	return p
}

// Start spawns worker goroutines and the orphan detection background
// task. It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call",
			"queue", p.queueName, "pod_id", p.podID)
		return nil
	}
	p.started = true

	workerCount := p.config.WorkersFor(p.queueName)
	slog.Info("Starting worker pool",
		"queue", p.queueName, "pod_id", p.podID, "worker_count", workerCount)

	for i := 0; i < workerCount; i++ {
		workerID := fmt.Sprintf("%s-%s-worker-%d", p.podID, p.queueName, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.queueName, p.handler, p.throttle)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current jobs (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully", "queue", p.queueName)

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped", "queue", p.queueName)
}

// PauseIntake pauses every worker in the pool.
func (p *WorkerPool) PauseIntake(d time.Duration) {
	for _, worker := range p.workers {
		worker.PauseIntake(d)
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(
			job.QueueEQ(p.queueName),
			job.StateEQ(job.StatePending),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"queue", p.queueName, "error", errQ)
	}

	activeJobs, errA := p.client.Job.Query().
		Where(
			job.QueueEQ(p.queueName),
			job.StateEQ(job.StateActive),
			job.ClaimedByEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active jobs for health check",
			"queue", p.queueName, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active jobs query failed: %v", errA)
		}
	}

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		Queue:            p.queueName,
		IsHealthy:        len(p.workers) > 0 && dbHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		ActiveJobs:       activeJobs,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}
