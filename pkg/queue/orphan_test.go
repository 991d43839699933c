package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/job"
	testdb "github.com/vidsage/vidsage/test/database"
)

// seedActiveJob inserts a job that looks claimed by the given pod with
// the given heartbeat age.
func seedActiveJob(t *testing.T, client *ent.Client, queue, podID string, heartbeatAge time.Duration, stalledCount int) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetQueue(queue).
		SetName("analyze-segment").
		SetPayload(map[string]interface{}{"contentId": "c1"}).
		SetState(job.StateActive).
		SetMaxAttempts(3).
		SetClaimedBy(podID).
		SetHeartbeatAt(time.Now().Add(-heartbeatAge)).
		SetStartedAt(time.Now().Add(-heartbeatAge)).
		SetStalledCount(stalledCount).
		SetJobKey("analyze:c1:" + uuid.NewString()).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestOrphanDetection_RedeliversStaleJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := fastQueueConfig("segment-analysis")
	pool := NewWorkerPool("pod-b", client.Client, cfg, "segment-analysis", &recordingHandler{})

	stale := seedActiveJob(t, client.Client, "segment-analysis", "pod-a", 10*time.Minute, 0)
	fresh := seedActiveJob(t, client.Client, "segment-analysis", "pod-a", 10*time.Second, 0)

	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	got := client.Job.GetX(context.Background(), stale.ID)
	assert.Equal(t, job.StatePending, got.State)
	assert.Equal(t, 1, got.StalledCount)
	assert.Zero(t, got.Attempts, "redelivery must not consume an attempt")
	assert.Nil(t, got.ClaimedBy)
	assert.Nil(t, got.HeartbeatAt)

	untouched := client.Job.GetX(context.Background(), fresh.ID)
	assert.Equal(t, job.StateActive, untouched.State, "jobs with live heartbeats stay active")
}

func TestOrphanDetection_FailsJobPastStallBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := fastQueueConfig("segment-analysis")
	pool := NewWorkerPool("pod-b", client.Client, cfg, "segment-analysis", &recordingHandler{})

	// Already redelivered MaxStalled times; one more stall fails it.
	stale := seedActiveJob(t, client.Client, "segment-analysis", "pod-a", 10*time.Minute, cfg.MaxStalled)

	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	got := client.Job.GetX(context.Background(), stale.ID)
	assert.Equal(t, job.StateFailed, got.State)
	assert.Equal(t, cfg.MaxStalled+1, got.StalledCount)
	assert.Nil(t, got.JobKey, "job key must be released when the job is failed")
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "stalled")
	assert.Contains(t, *got.LastError, "pod-a")
}

func TestOrphanDetection_ScopedToOwnQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := fastQueueConfig("segment-analysis")
	pool := NewWorkerPool("pod-b", client.Client, cfg, "segment-analysis", &recordingHandler{})

	other := seedActiveJob(t, client.Client, "combination", "pod-a", 10*time.Minute, 0)

	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	got := client.Job.GetX(context.Background(), other.ID)
	assert.Equal(t, job.StateActive, got.State, "pools only recover their own queue")
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)

	mine := seedActiveJob(t, client.Client, "segment-analysis", "pod-a", time.Minute, 1)
	theirs := seedActiveJob(t, client.Client, "combination", "pod-b", time.Minute, 0)

	require.NoError(t, CleanupStartupOrphans(context.Background(), client.Client, "pod-a"))

	got := client.Job.GetX(context.Background(), mine.ID)
	assert.Equal(t, job.StatePending, got.State)
	assert.Nil(t, got.ClaimedBy)
	assert.Nil(t, got.HeartbeatAt)
	assert.Equal(t, 1, got.StalledCount, "restart recovery is not a stall")

	untouched := client.Job.GetX(context.Background(), theirs.ID)
	assert.Equal(t, job.StateActive, untouched.State, "other pods' claims are left alone")
}
