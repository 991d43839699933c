package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/job"
)

// Options controls one enqueue.
type Options struct {
	// Attempts is the delivery budget; zero means one attempt.
	Attempts int

	// BackoffBaseMs is the base of the exponential retry backoff
	// (base · 2^(attempts−1)).
	BackoffBaseMs int64

	// Priority orders dispatch within a queue; higher runs first.
	Priority int

	// Delay postpones the first delivery.
	Delay time.Duration

	// JobKey makes the enqueue idempotent: while a job holding the key
	// is pending or active, enqueueing the same key returns that job.
	JobKey string

	// RemoveOnComplete deletes the row on success instead of keeping a
	// completed record.
	RemoveOnComplete bool
}

// Service enqueues jobs and manages repeatable definitions.
type Service struct {
	client *ent.Client
}

// NewService creates a queue service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("NewService: client is required")
	}
	return &Service{client: client}
}

// Enqueue adds one job. With a JobKey the call is idempotent: a unique
// violation against a live job returns the existing row instead of an
// error, collapsing concurrent triggers into one delivery.
func (s *Service) Enqueue(ctx context.Context, queue, name string, payload any, opts Options) (*ent.Job, error) {
	if queue == "" || name == "" {
		return nil, fmt.Errorf("queue and name are required")
	}

	payloadMap, err := toPayloadMap(payload)
	if err != nil {
		return nil, err
	}

	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	builder := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(queue).
		SetName(name).
		SetPayload(payloadMap).
		SetMaxAttempts(attempts).
		SetPriority(opts.Priority).
		SetBackoffBaseMs(opts.BackoffBaseMs).
		SetRemoveOnComplete(opts.RemoveOnComplete).
		SetRunAt(time.Now().Add(opts.Delay))
	if opts.JobKey != "" {
		builder.SetJobKey(opts.JobKey)
	}

	created, err := builder.Save(ctx)
	if err == nil {
		return created, nil
	}
	if opts.JobKey == "" || !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	existing, lookupErr := s.client.Job.Query().
		Where(job.JobKeyEQ(opts.JobKey)).
		Only(ctx)
	if lookupErr != nil {
		return nil, fmt.Errorf("failed to enqueue job with key %q: %w", opts.JobKey, err)
	}
	return existing, nil
}

// GetJob retrieves a job by ID.
func (s *Service) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s not found", jobID)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// EnqueueRepeatable upserts a cron-defined job keyed by stableID. Each
// due tick enqueues one regular job instance; re-registering the same
// stableID reconciles the schedule in place.
func (s *Service) EnqueueRepeatable(ctx context.Context, queue, name string, payload any, cronPattern, stableID string) error {
	if stableID == "" {
		return fmt.Errorf("stable id is required")
	}
	schedule, err := cron.ParseStandard(cronPattern)
	if err != nil {
		return fmt.Errorf("invalid cron pattern %q: %w", cronPattern, err)
	}

	payloadMap, err := toPayloadMap(payload)
	if err != nil {
		return err
	}

	nextRun := schedule.Next(time.Now().UTC())
	err = s.client.CronJob.Create().
		SetID(uuid.New().String()).
		SetStableID(stableID).
		SetQueue(queue).
		SetName(name).
		SetPayload(payloadMap).
		SetCronPattern(cronPattern).
		SetNextRunAt(nextRun).
		OnConflictColumns(cronjob.FieldStableID).
		Update(func(u *ent.CronJobUpsert) {
			u.SetQueue(queue)
			u.SetName(name)
			u.SetPayload(payloadMap)
			u.SetCronPattern(cronPattern)
			u.SetNextRunAt(nextRun)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert repeatable job %q: %w", stableID, err)
	}
	return nil
}

// RemoveRepeatable deletes a repeatable definition. Removing an unknown
// stableID is a no-op.
func (s *Service) RemoveRepeatable(ctx context.Context, stableID string) error {
	_, err := s.client.CronJob.Delete().
		Where(cronjob.StableIDEQ(stableID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove repeatable job %q: %w", stableID, err)
	}
	return nil
}

// ListRepeatable returns every repeatable definition.
func (s *Service) ListRepeatable(ctx context.Context) ([]*ent.CronJob, error) {
	jobs, err := s.client.CronJob.Query().
		Order(ent.Asc(cronjob.FieldStableID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list repeatable jobs: %w", err)
	}
	return jobs, nil
}

// toPayloadMap converts an arbitrary payload to the stored JSON map.
func toPayloadMap(payload any) (map[string]interface{}, error) {
	if payload == nil {
		return map[string]interface{}{}, nil
	}
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("payload must encode to a JSON object: %w", err)
	}
	return m, nil
}
