package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/robfig/cron/v3"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/pkg/config"
)

// Scheduler turns due repeatable definitions into regular job
// instances. One goroutine per pod; the SKIP LOCKED claim keeps
// concurrent pods from double-enqueueing, and the epoch-stamped job key
// collapses any race that slips through.
type Scheduler struct {
	client  *ent.Client
	config  *config.QueueConfig
	service *Service

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler over the queue service.
func NewScheduler(client *ent.Client, cfg *config.QueueConfig, service *Service) *Scheduler {
	if client == nil || service == nil {
		panic("NewScheduler: client and service are required")
	}
	return &Scheduler{
		client:  client,
		config:  cfg,
		service: service,
		stopCh:  make(chan struct{}),
	}
}

// Start begins the scheduling loop in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the scheduler to stop and waits for it to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	slog.Info("Scheduler started", "interval", s.config.SchedulerInterval)
	ticker := time.NewTicker(s.config.SchedulerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			slog.Info("Scheduler shutting down")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.enqueueDue(ctx); err != nil {
				slog.Error("Failed to enqueue due repeatable jobs", "error", err)
			}
		}
	}
}

// enqueueDue claims due repeatable rows, enqueues one instance each,
// and advances next_run_at.
func (s *Scheduler) enqueueDue(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	due, err := tx.CronJob.Query().
		Where(cronjob.NextRunAtLTE(time.Now())).
		Order(ent.Asc(cronjob.FieldNextRunAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query due repeatable jobs: %w", err)
	}
	if len(due) == 0 {
		return tx.Commit()
	}

	for _, def := range due {
		schedule, err := cron.ParseStandard(def.CronPattern)
		if err != nil {
			// A bad pattern would otherwise stay due forever; push it a
			// day out and keep the scheduler moving.
			slog.Error("Repeatable job has invalid cron pattern",
				"stable_id", def.StableID, "cron", def.CronPattern, "error", err)
			if err := def.Update().SetNextRunAt(time.Now().Add(24 * time.Hour)).Exec(ctx); err != nil {
				return fmt.Errorf("failed to park repeatable job %q: %w", def.StableID, err)
			}
			continue
		}

		jobKey := fmt.Sprintf("repeat:%s:%d", def.StableID, def.NextRunAt.Unix())
		_, err = s.service.Enqueue(ctx, def.Queue, def.Name, def.Payload, Options{
			JobKey:           jobKey,
			RemoveOnComplete: true,
		})
		if err != nil {
			return fmt.Errorf("failed to enqueue instance of %q: %w", def.StableID, err)
		}

		now := time.Now()
		err = def.Update().
			SetNextRunAt(schedule.Next(now.UTC())).
			SetLastEnqueuedAt(now).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance repeatable job %q: %w", def.StableID, err)
		}

		slog.Debug("Repeatable job enqueued",
			"stable_id", def.StableID, "queue", def.Queue, "job_key", jobKey)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scheduler pass: %w", err)
	}
	return nil
}
