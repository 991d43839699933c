package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "queue", p.queueName, "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds active jobs with stale heartbeats and
// redelivers them. Redelivery does not consume an attempt, but each
// redelivery counts against the stall budget: a job that keeps losing
// its worker is failed outright rather than looping forever.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.QueueEQ(p.queueName),
			job.StateEQ(job.StateActive),
			job.HeartbeatAtNotNil(),
			job.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	recovered := 0
	for _, orphan := range orphans {
		if err := p.recoverOrphanedJob(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", orphan.ID, "queue", p.queueName, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if len(orphans) > 0 {
		slog.Warn("Recovered orphaned jobs",
			"queue", p.queueName, "count", recovered, "detected", len(orphans))
	}
	return nil
}

// recoverOrphanedJob redelivers a single orphan, or fails it once the
// stall budget is spent.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, orphan *ent.Job) error {
	claimedBy := "unknown"
	if orphan.ClaimedBy != nil {
		claimedBy = *orphan.ClaimedBy
	}
	lastHeartbeat := "unknown"
	if orphan.HeartbeatAt != nil {
		lastHeartbeat = orphan.HeartbeatAt.Format(time.RFC3339)
	}

	stalled := orphan.StalledCount + 1
	if stalled > p.config.MaxStalled {
		err := orphan.Update().
			SetState(job.StateFailed).
			SetStalledCount(stalled).
			SetLastError(fmt.Sprintf("stalled %d times; last claimed by %s, last heartbeat %s", stalled, claimedBy, lastHeartbeat)).
			SetFinishedAt(time.Now()).
			ClearJobKey().
			ClearClaimedBy().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to fail stalled job: %w", err)
		}
		slog.Warn("Stalled job failed permanently",
			"job_id", orphan.ID, "queue", p.queueName, "stalled_count", stalled)
		return nil
	}

	err := orphan.Update().
		SetState(job.StatePending).
		SetStalledCount(stalled).
		SetRunAt(time.Now()).
		ClearClaimedBy().
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to redeliver orphaned job: %w", err)
	}
	slog.Warn("Orphaned job redelivered",
		"job_id", orphan.ID, "queue", p.queueName,
		"old_claimed_by", claimedBy, "last_heartbeat", lastHeartbeat, "stalled_count", stalled)
	return nil
}

// CleanupStartupOrphans redelivers jobs this pod held active when it
// previously crashed. Called once during startup, before any worker
// pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StateEQ(job.StateActive),
			job.ClaimedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, orphan := range orphans {
		err := orphan.Update().
			SetState(job.StatePending).
			SetRunAt(time.Now()).
			ClearClaimedBy().
			ClearHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to redeliver startup orphan",
				"job_id", orphan.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan redelivered", "job_id", orphan.ID, "queue", orphan.Queue)
	}

	return nil
}
