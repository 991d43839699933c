package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/config"
	testdb "github.com/vidsage/vidsage/test/database"
)

// fastQueueConfig trims the default intervals so integration tests do
// not sit in poll sleeps.
func fastQueueConfig(queueName string) *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.Workers = map[string]int{queueName: 1}
	cfg.DefaultWorkers = 1
	cfg.Throttles = map[string]config.Throttle{
		queueName: {Max: 1000, WindowMs: 1000},
	}
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = time.Hour
	return cfg
}

// recordingHandler runs a per-call script and records job names in
// processing order.
type recordingHandler struct {
	mu      sync.Mutex
	names   []string
	results []Result
	calls   int
}

func (h *recordingHandler) Process(_ context.Context, j *ent.Job, _ WorkerControl) Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.names = append(h.names, j.Name)
	r := Success()
	if h.calls < len(h.results) {
		r = h.results[h.calls]
	}
	h.calls++
	return r
}

func (h *recordingHandler) processed() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.names...)
}

func startPool(t *testing.T, client *ent.Client, cfg *config.QueueConfig, queueName string, handler Handler) *WorkerPool {
	t.Helper()
	pool := NewWorkerPool("test-pod", client, cfg, queueName, handler)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)
	return pool
}

func waitForState(t *testing.T, client *ent.Client, jobID string, want job.State) *ent.Job {
	t.Helper()
	var got *ent.Job
	require.Eventually(t, func() bool {
		j, err := client.Job.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		got = j
		return j.State == want
	}, 5*time.Second, 20*time.Millisecond, "job never reached state %s", want)
	return got
}

func TestWorkerPool_CompletesJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	handler := &recordingHandler{}
	startPool(t, client.Client, fastQueueConfig("stats"), "stats", handler)

	j, err := svc.Enqueue(context.Background(), "stats", "refresh-stats", nil, Options{JobKey: "stats:daily"})
	require.NoError(t, err)

	done := waitForState(t, client.Client, j.ID, job.StateCompleted)
	assert.Equal(t, 1, done.Attempts)
	assert.Nil(t, done.JobKey, "job key must be released on completion")
	assert.Nil(t, done.ClaimedBy)
	assert.NotNil(t, done.FinishedAt)
	assert.Equal(t, []string{"refresh-stats"}, handler.processed())
}

func TestWorkerPool_RemoveOnComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	startPool(t, client.Client, fastQueueConfig("stats"), "stats", &recordingHandler{})

	j, err := svc.Enqueue(context.Background(), "stats", "refresh-stats", nil, Options{RemoveOnComplete: true})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := client.Job.Get(context.Background(), j.ID)
		return ent.IsNotFound(err)
	}, 5*time.Second, 20*time.Millisecond, "remove-on-complete job should be deleted")
}

func TestWorkerPool_DeferredKeepsAttempts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	handler := &recordingHandler{results: []Result{Deferred(10 * time.Minute)}}
	startPool(t, client.Client, fastQueueConfig("segment-analysis"), "segment-analysis", handler)

	j, err := svc.Enqueue(context.Background(), "segment-analysis", "analyze-segment", nil, Options{Attempts: 3})
	require.NoError(t, err)

	var deferred *ent.Job
	require.Eventually(t, func() bool {
		got, err := client.Job.Get(context.Background(), j.ID)
		if err != nil {
			return false
		}
		deferred = got
		return got.State == job.StatePending && got.RunAt.After(time.Now().Add(5*time.Minute))
	}, 5*time.Second, 20*time.Millisecond, "deferred job should be rescheduled")

	assert.Zero(t, deferred.Attempts, "deferral must not consume an attempt")
	assert.Nil(t, deferred.ClaimedBy)
	assert.Nil(t, deferred.HeartbeatAt)
}

func TestWorkerPool_TransientFailureRetriesThenFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	handler := &recordingHandler{results: []Result{
		Failed(FailTransient, assert.AnError),
		Failed(FailTransient, assert.AnError),
	}}
	startPool(t, client.Client, fastQueueConfig("segment-analysis"), "segment-analysis", handler)

	j, err := svc.Enqueue(context.Background(), "segment-analysis", "analyze-segment", nil, Options{
		Attempts:      2,
		BackoffBaseMs: 1, // clamped to the one second floor, retry lands inside the wait window
		JobKey:        "analyze:c1:0",
	})
	require.NoError(t, err)

	failed := waitForState(t, client.Client, j.ID, job.StateFailed)
	assert.Equal(t, 2, failed.Attempts)
	assert.Nil(t, failed.JobKey, "job key must be released on terminal failure")
	require.NotNil(t, failed.LastError)
	assert.Contains(t, *failed.LastError, assert.AnError.Error())
	assert.Len(t, handler.processed(), 2)
}

func TestWorkerPool_ValidationFailureIsTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	handler := &recordingHandler{results: []Result{Failed(FailValidation, assert.AnError)}}
	startPool(t, client.Client, fastQueueConfig("content-processing"), "content-processing", handler)

	j, err := svc.Enqueue(context.Background(), "content-processing", "plan-segments", nil, Options{Attempts: 5})
	require.NoError(t, err)

	failed := waitForState(t, client.Client, j.ID, job.StateFailed)
	assert.Equal(t, 1, failed.Attempts, "validation failures must not retry")
	assert.Len(t, handler.processed(), 1)
}

func TestWorkerPool_PriorityOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	// Enqueue before starting the single worker so dispatch order is
	// decided purely by priority.
	_, err := svc.Enqueue(ctx, "combination", "combine-low", nil, Options{Priority: 0})
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, "combination", "combine-high", nil, Options{Priority: 10})
	require.NoError(t, err)

	handler := &recordingHandler{}
	startPool(t, client.Client, fastQueueConfig("combination"), "combination", handler)

	require.Eventually(t, func() bool {
		return len(handler.processed()) == 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"combine-high", "combine-low"}, handler.processed())
}

func TestWorkerPool_PauseIntake(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	handler := &recordingHandler{}
	pool := startPool(t, client.Client, fastQueueConfig("segment-analysis"), "segment-analysis", handler)

	pool.PauseIntake(time.Hour)

	_, err := svc.Enqueue(context.Background(), "segment-analysis", "analyze-segment", nil, Options{})
	require.NoError(t, err)

	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, handler.processed(), "paused workers must not claim jobs")

	health := pool.Health()
	require.Len(t, health.WorkerStats, 1)
	assert.False(t, health.WorkerStats[0].PausedUntil.IsZero())
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, retryBackoff(2000, 1))
	assert.Equal(t, 4*time.Second, retryBackoff(2000, 2))
	assert.Equal(t, 8*time.Second, retryBackoff(2000, 3))
	assert.Equal(t, time.Second, retryBackoff(0, 1), "missing base falls back to one second")
}
