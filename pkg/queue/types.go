// Package queue provides the durable Postgres-backed job queue: enqueue
// with idempotency keys, repeatable cron-defined jobs, worker pools with
// dispatch throttles, heartbeats, and orphan recovery.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/pkg/config"
)

// ErrNoJobsAvailable indicates no due pending jobs are in the queue.
var ErrNoJobsAvailable = errors.New("no jobs available")

// FailKind classifies a failed delivery for retry purposes.
type FailKind string

// Failure kinds. Transient failures retry with backoff until the job's
// attempt budget runs out; validation and fatal failures are terminal on
// the first occurrence.
const (
	FailTransient  FailKind = "transient"
	FailValidation FailKind = "validation"
	FailFatal      FailKind = "fatal"
)

type resultKind int

const (
	resultSuccess resultKind = iota
	resultDeferred
	resultFailed
)

// Result is the outcome of one job delivery. Construct it with
// Success, Deferred, or Failed — a deferral is not a failure and never
// consumes an attempt.
type Result struct {
	kind     resultKind
	delay    time.Duration
	failKind FailKind
	err      error
}

// Success reports a completed delivery.
func Success() Result {
	return Result{kind: resultSuccess}
}

// Deferred reschedules the job to run_at = now + delay without touching
// its attempt counter. Used for rate-limit signals.
func Deferred(delay time.Duration) Result {
	return Result{kind: resultDeferred, delay: delay}
}

// Failed reports a failed delivery. Transient failures are retried with
// exponential backoff while attempts remain; validation and fatal
// failures finish the job immediately.
func Failed(kind FailKind, err error) Result {
	return Result{kind: resultFailed, failKind: kind, err: err}
}

// Succeeded reports whether the delivery completed.
func (r Result) Succeeded() bool {
	return r.kind == resultSuccess
}

// DeferredFor returns the reschedule delay of a deferred result.
func (r Result) DeferredFor() (time.Duration, bool) {
	return r.delay, r.kind == resultDeferred
}

// Failure returns the failure kind and cause of a failed result.
func (r Result) Failure() (FailKind, error, bool) {
	if r.kind != resultFailed {
		return "", nil, false
	}
	return r.failKind, r.err, true
}

// Handler processes one job delivery. The WorkerControl belongs to the
// delivering worker; handlers use it to pause intake on rate-limit
// signals without failing the job.
type Handler interface {
	Process(ctx context.Context, job *ent.Job, wc WorkerControl) Result
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, job *ent.Job, wc WorkerControl) Result

// Process implements Handler.
func (f HandlerFunc) Process(ctx context.Context, job *ent.Job, wc WorkerControl) Result {
	return f(ctx, job, wc)
}

// WorkerControl is the worker-side surface handlers and the rate-limit
// coordinator drive. A paused worker finishes its current job but claims
// no new ones until the pause lapses.
type WorkerControl interface {
	PauseIntake(d time.Duration)
}

// ThrottleFunc retunes a queue's dispatch throttle before each claim.
// The coordinator uses this to tighten dispatch under quota pressure.
type ThrottleFunc func(queueName string, base config.Throttle) config.Throttle

// DecodePayload unmarshals a job's payload into v.
func DecodePayload(job *ent.Job, v any) error {
	raw, err := json.Marshal(job.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload of job %s: %w", job.ID, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode payload of job %s: %w", job.ID, err)
	}
	return nil
}

// PoolHealth contains health information for one queue's worker pool.
type PoolHealth struct {
	Queue            string         `json:"queue"`
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	ActiveJobs       int            `json:"active_jobs"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
	PausedUntil   time.Time `json:"paused_until,omitempty"`
}
