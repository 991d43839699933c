package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"golang.org/x/time/rate"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls one queue and processes
// jobs through its handler.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	queueName string
	handler   Handler
	throttle  ThrottleFunc

	limiter         *rate.Limiter
	currentThrottle config.Throttle

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health and pause tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
	pausedUntil   time.Time
}

// NewWorker creates a queue worker. throttle may be nil (static
// dispatch throttle from config).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, queueName string, handler Handler, throttle ThrottleFunc) *Worker {
	base := cfg.ThrottleFor(queueName)
	return &Worker{
		id:              id,
		podID:           podID,
		client:          client,
		config:          cfg,
		queueName:       queueName,
		handler:         handler,
		throttle:        throttle,
		limiter:         rate.NewLimiter(throttleLimit(base), 1),
		currentThrottle: base,
		stopCh:          make(chan struct{}),
		status:          WorkerStatusIdle,
		lastActivity:    time.Now(),
	}
}

// throttleLimit converts {max, window} into an x/time/rate limit.
func throttleLimit(t config.Throttle) rate.Limit {
	if t.Max <= 0 || t.WindowMs <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(t.Max) / t.Window().Seconds())
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its
// current job. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// PauseIntake stops the worker from claiming new jobs until the pause
// lapses. Concurrent pauses keep the furthest deadline; the current job
// is unaffected.
func (w *Worker) PauseIntake(d time.Duration) {
	if d <= 0 {
		return
	}
	until := time.Now().Add(d)

	w.mu.Lock()
	extended := until.After(w.pausedUntil)
	if extended {
		w.pausedUntil = until
	}
	w.mu.Unlock()

	if extended {
		slog.Info("Worker intake paused",
			"worker_id", w.id, "queue", w.queueName, "until", until.Format(time.RFC3339))
	}
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h := WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
	if w.pausedUntil.After(time.Now()) {
		h.PausedUntil = w.pausedUntil
	}
	return h
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queueName, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if remaining := w.pauseRemaining(); remaining > 0 {
				w.sleep(minDuration(remaining, w.pollInterval()))
				continue
			}
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pauseRemaining returns how long intake stays paused, zero when open.
func (w *Worker) pauseRemaining() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return time.Until(w.pausedUntil)
}

// pollAndProcess claims the next due job, runs the handler, and applies
// the result.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Cheap existence probe so empty polls do not burn throttle
	//    tokens.
	due, err := w.client.Job.Query().
		Where(
			job.QueueEQ(w.queueName),
			job.StateEQ(job.StatePending),
			job.RunAtLTE(time.Now()),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking due jobs: %w", err)
	}
	if !due {
		return ErrNoJobsAvailable
	}

	// 2. Retune the dispatch throttle, then spend one token.
	w.retuneThrottle()
	if !w.limiter.Allow() {
		return ErrNoJobsAvailable
	}

	// 3. Claim the next job.
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "queue", w.queueName, "name", claimed.Name, "worker_id", w.id)
	log.Info("Job claimed", "attempts", claimed.Attempts)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Heartbeat while the handler runs.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	result := w.handler.Process(ctx, claimed, w)
	cancelHeartbeat()

	// 5. Shutdown mid-flight: hand the job back untouched so another
	//    pod redelivers it without spending an attempt.
	if ctx.Err() != nil {
		if err := w.redeliver(context.Background(), claimed); err != nil {
			log.Error("Failed to redeliver job on shutdown", "error", err)
			return err
		}
		log.Info("Job redelivered on shutdown")
		return nil
	}

	// 6. Terminal writes always use a background context.
	if err := w.applyResult(context.Background(), claimed, result); err != nil {
		log.Error("Failed to apply job result", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// retuneThrottle refreshes the limiter from the throttle func.
func (w *Worker) retuneThrottle() {
	if w.throttle == nil {
		return
	}
	effective := w.throttle(w.queueName, w.config.ThrottleFor(w.queueName))
	if effective == w.currentThrottle {
		return
	}
	w.currentThrottle = effective
	w.limiter.SetLimit(throttleLimit(effective))
}

// claimNextJob atomically claims the next due job using FOR UPDATE SKIP
// LOCKED. Dispatch order: priority desc, run_at asc, created_at asc.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := tx.Job.Query().
		Where(
			job.QueueEQ(w.queueName),
			job.StateEQ(job.StatePending),
			job.RunAtLTE(time.Now()),
		).
		Order(
			ent.Desc(job.FieldPriority),
			ent.Asc(job.FieldRunAt),
			ent.Asc(job.FieldCreatedAt),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	next, err = next.Update().
		SetState(job.StateActive).
		SetClaimedBy(w.podID).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return next, nil
}

// runHeartbeat periodically renews heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// applyResult writes the delivery outcome. Deferrals reschedule without
// consuming an attempt; failures consume one and either retry with
// exponential backoff or finish the job.
func (w *Worker) applyResult(ctx context.Context, claimed *ent.Job, result Result) error {
	log := slog.With("job_id", claimed.ID, "queue", w.queueName, "name", claimed.Name)

	switch result.kind {
	case resultSuccess:
		if claimed.RemoveOnComplete {
			err := w.client.Job.DeleteOneID(claimed.ID).Exec(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return fmt.Errorf("failed to remove completed job: %w", err)
			}
			log.Info("Job completed and removed")
			return nil
		}
		err := w.client.Job.UpdateOneID(claimed.ID).
			SetState(job.StateCompleted).
			SetAttempts(claimed.Attempts + 1).
			SetFinishedAt(time.Now()).
			ClearJobKey().
			ClearClaimedBy().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to complete job: %w", err)
		}
		log.Info("Job completed")
		return nil

	case resultDeferred:
		err := w.client.Job.UpdateOneID(claimed.ID).
			SetState(job.StatePending).
			SetRunAt(time.Now().Add(result.delay)).
			ClearClaimedBy().
			ClearHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to defer job: %w", err)
		}
		log.Info("Job deferred", "delay", result.delay, "attempts", claimed.Attempts)
		return nil

	case resultFailed:
		attempts := claimed.Attempts + 1
		terminal := result.failKind != FailTransient || attempts >= claimed.MaxAttempts

		update := w.client.Job.UpdateOneID(claimed.ID).
			SetAttempts(attempts).
			ClearClaimedBy()
		if result.err != nil {
			update.SetLastError(result.err.Error())
		}

		if terminal {
			update.SetState(job.StateFailed).
				SetFinishedAt(time.Now()).
				ClearJobKey()
		} else {
			backoff := retryBackoff(claimed.BackoffBaseMs, attempts)
			update.SetState(job.StatePending).
				SetRunAt(time.Now().Add(backoff)).
				ClearHeartbeatAt()
			log = log.With("backoff", backoff)
		}

		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to record job failure: %w", err)
		}
		log.Warn("Job delivery failed",
			"kind", result.failKind, "attempts", attempts,
			"max_attempts", claimed.MaxAttempts, "terminal", terminal, "error", result.err)
		return nil

	default:
		return fmt.Errorf("unknown result kind %d", result.kind)
	}
}

// redeliver hands an active job back to the queue untouched.
func (w *Worker) redeliver(ctx context.Context, claimed *ent.Job) error {
	return w.client.Job.UpdateOneID(claimed.ID).
		SetState(job.StatePending).
		SetRunAt(time.Now()).
		ClearClaimedBy().
		ClearHeartbeatAt().
		Exec(ctx)
}

// retryBackoff computes base · 2^(attempts−1) with a one second floor.
func retryBackoff(baseMs int64, attempts int) time.Duration {
	backoff := time.Duration(baseMs) * time.Millisecond
	for i := 1; i < attempts; i++ {
		backoff *= 2
	}
	if backoff < time.Second {
		return time.Second
	}
	return backoff
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
