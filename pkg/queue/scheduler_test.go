package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/job"
	testdb "github.com/vidsage/vidsage/test/database"
)

func TestScheduler_EnqueuesDueDefinition(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.EnqueueRepeatable(ctx, "channel-discovery", "discover",
		map[string]interface{}{"channelId": "ch1"}, "* * * * *", "discover:ch1"))

	// Backdate the definition so it is due now.
	due := time.Now().Add(-time.Minute).Truncate(time.Second)
	require.NoError(t, client.CronJob.Update().
		Where(cronjob.StableIDEQ("discover:ch1")).
		SetNextRunAt(due).
		Exec(ctx))

	scheduler := NewScheduler(client.Client, fastQueueConfig("channel-discovery"), svc)
	require.NoError(t, scheduler.enqueueDue(ctx))

	instance, err := client.Job.Query().Where(job.QueueEQ("channel-discovery")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "discover", instance.Name)
	assert.True(t, instance.RemoveOnComplete, "repeatable instances should not accumulate rows")
	require.NotNil(t, instance.JobKey)
	assert.Equal(t, fmt.Sprintf("repeat:discover:ch1:%d", due.Unix()), *instance.JobKey)
	assert.Equal(t, "ch1", instance.Payload["channelId"])

	def, err := client.CronJob.Query().Where(cronjob.StableIDEQ("discover:ch1")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, def.NextRunAt.After(time.Now()), "next_run_at must advance past now")
	require.NotNil(t, def.LastEnqueuedAt)

	// A second pass sees nothing due and enqueues nothing.
	require.NoError(t, scheduler.enqueueDue(ctx))
	n, err := client.Job.Query().Where(job.QueueEQ("channel-discovery")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScheduler_ParksInvalidCronPattern(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	// Simulate a definition whose pattern was valid when written but is
	// rejected by the current parser.
	_, err := client.CronJob.Create().
		SetID(uuid.NewString()).
		SetStableID("discover:broken").
		SetQueue("channel-discovery").
		SetName("discover").
		SetPayload(map[string]interface{}{}).
		SetCronPattern("not a cron").
		SetNextRunAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	scheduler := NewScheduler(client.Client, fastQueueConfig("channel-discovery"), svc)
	require.NoError(t, scheduler.enqueueDue(ctx))

	n, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "invalid definitions enqueue nothing")

	def, err := client.CronJob.Query().Where(cronjob.StableIDEQ("discover:broken")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, def.NextRunAt.After(time.Now().Add(23*time.Hour)),
		"broken definitions are parked instead of retried every tick")
}

func TestScheduler_RunLoop(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.EnqueueRepeatable(ctx, "stats", "refresh-stats", nil, "* * * * *", "stats:refresh"))
	require.NoError(t, client.CronJob.Update().
		Where(cronjob.StableIDEQ("stats:refresh")).
		SetNextRunAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	cfg := fastQueueConfig("stats")
	cfg.SchedulerInterval = 50 * time.Millisecond
	scheduler := NewScheduler(client.Client, cfg, svc)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	require.Eventually(t, func() bool {
		n, err := client.Job.Query().Where(job.QueueEQ("stats")).Count(ctx)
		return err == nil && n == 1
	}, 5*time.Second, 20*time.Millisecond, "scheduler loop should enqueue the due definition")
}
