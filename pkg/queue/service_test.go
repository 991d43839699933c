package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/job"
	testdb "github.com/vidsage/vidsage/test/database"
)

func TestService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		j, err := svc.Enqueue(ctx, "segment-analysis", "analyze-segment",
			map[string]interface{}{"contentId": "c1", "segmentIndex": float64(0)}, Options{})
		require.NoError(t, err)
		assert.Equal(t, job.StatePending, j.State)
		assert.Equal(t, 1, j.MaxAttempts)
		assert.Zero(t, j.Attempts)
	})

	t.Run("struct payloads are stored as JSON objects", func(t *testing.T) {
		type payload struct {
			ContentID string `json:"contentId"`
			Index     int    `json:"segmentIndex"`
		}
		j, err := svc.Enqueue(ctx, "segment-analysis", "analyze-segment",
			payload{ContentID: "c2", Index: 3}, Options{})
		require.NoError(t, err)

		var decoded payload
		require.NoError(t, DecodePayload(j, &decoded))
		assert.Equal(t, payload{ContentID: "c2", Index: 3}, decoded)
	})

	t.Run("delay pushes run_at forward", func(t *testing.T) {
		j, err := svc.Enqueue(ctx, "stats", "refresh-stats", nil, Options{Delay: time.Hour})
		require.NoError(t, err)
		assert.Greater(t, j.RunAt.Unix(), time.Now().Add(30*time.Minute).Unix())
	})
}

func TestService_Enqueue_JobKeyIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	first, err := svc.Enqueue(ctx, "combination", "combine",
		map[string]interface{}{"contentId": "c1"}, Options{JobKey: "combine:c1"})
	require.NoError(t, err)

	// A concurrent trigger collapses into the live job.
	second, err := svc.Enqueue(ctx, "combination", "combine",
		map[string]interface{}{"contentId": "c1"}, Options{JobKey: "combine:c1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	n, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_Enqueue_JobKeyFreedOnTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	first, err := svc.Enqueue(ctx, "combination", "combine",
		map[string]interface{}{"contentId": "c1"}, Options{JobKey: "combine:c1"})
	require.NoError(t, err)

	// Terminal transition clears the key, as the worker does.
	err = client.Job.UpdateOneID(first.ID).
		SetState(job.StateCompleted).
		ClearJobKey().
		Exec(ctx)
	require.NoError(t, err)

	second, err := svc.Enqueue(ctx, "combination", "combine",
		map[string]interface{}{"contentId": "c1"}, Options{JobKey: "combine:c1"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Repeatables(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	t.Run("rejects invalid cron", func(t *testing.T) {
		err := svc.EnqueueRepeatable(ctx, "channel-discovery", "discover", nil, "not a cron", "discover:ch1")
		assert.Error(t, err)
	})

	t.Run("upserts on stable id", func(t *testing.T) {
		require.NoError(t, svc.EnqueueRepeatable(ctx, "channel-discovery", "discover",
			map[string]interface{}{"channelId": "ch1"}, "0 */6 * * *", "discover:ch1"))
		require.NoError(t, svc.EnqueueRepeatable(ctx, "channel-discovery", "discover",
			map[string]interface{}{"channelId": "ch1"}, "0 */2 * * *", "discover:ch1"))

		defs, err := svc.ListRepeatable(ctx)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, "0 */2 * * *", defs[0].CronPattern)
		assert.True(t, defs[0].NextRunAt.After(time.Now().Add(-time.Minute)))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, svc.RemoveRepeatable(ctx, "discover:ch1"))
		require.NoError(t, svc.RemoveRepeatable(ctx, "discover:ch1"))

		defs, err := svc.ListRepeatable(ctx)
		require.NoError(t, err)
		assert.Empty(t, defs)
	})
}
