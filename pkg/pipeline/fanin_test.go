package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/services"
)

func twoSegmentSpans() []services.SegmentSpan {
	return []services.SegmentSpan{
		{Index: 0, StartSec: 0, EndSec: 900},
		{Index: 1, StartSec: 870, EndSec: 1500},
	}
}

func TestFanin_Readiness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fanin := env.fanin()
	ch := env.seedChannel(t)

	t.Run("not chunked before planning", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		r, err := fanin.Readiness(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, Readiness{State: ReadinessNotChunked}, r)
	})

	t.Run("processing while segments are in flight", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		env.seedPlan(t, c.ID, twoSegmentSpans())

		r, err := fanin.Readiness(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, Readiness{State: ReadinessProcessing, Expected: 2}, r)
	})

	t.Run("ready when all segments analyzed", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		env.seedPlan(t, c.ID, twoSegmentSpans())
		markAnalyzed(t, env, c.ID, 0)
		markAnalyzed(t, env, c.ID, 1)

		r, err := fanin.Readiness(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, Readiness{State: ReadinessReady, Expected: 2, Completed: 2}, r)
	})

	t.Run("partial when some settled failed", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		env.seedPlan(t, c.ID, twoSegmentSpans())
		markAnalyzed(t, env, c.ID, 0)
		require.NoError(t, env.stores.Segments.MarkFailed(ctx, c.ID, 1, "daily-quota"))

		r, err := fanin.Readiness(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, Readiness{State: ReadinessPartial, Expected: 2, Completed: 1, Failed: 1}, r)
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := fanin.Readiness(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestFanin_OnSegmentSettled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fanin := env.fanin()
	ch := env.seedChannel(t)

	t.Run("ready triggers one combination job", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		env.seedPlan(t, c.ID, twoSegmentSpans())
		markAnalyzed(t, env, c.ID, 0)
		markAnalyzed(t, env, c.ID, 1)

		require.NoError(t, fanin.OnSegmentSettled(ctx, c.ID))
		// Both segments' settle events race in production; a second
		// evaluation must collapse onto the same job.
		require.NoError(t, fanin.OnSegmentSettled(ctx, c.ID))

		jobs, err := env.client.Job.Query().Where(job.QueueEQ("combination")).All(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.NotNil(t, jobs[0].JobKey)
		assert.Equal(t, CombineJobKey(c.ID), *jobs[0].JobKey)
		assert.Equal(t, 0, jobs[0].Priority)
	})

	t.Run("partial does not auto-trigger", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		env.seedPlan(t, c.ID, twoSegmentSpans())
		markAnalyzed(t, env, c.ID, 0)
		require.NoError(t, env.stores.Segments.MarkFailed(ctx, c.ID, 1, "daily-quota"))

		require.NoError(t, fanin.OnSegmentSettled(ctx, c.ID))

		n, err := env.client.Job.Query().
			Where(job.QueueEQ("combination"), job.JobKeyEQ(CombineJobKey(c.ID))).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("manual partial trigger enqueues at high priority", func(t *testing.T) {
		c := env.seedContent(t, ch.ID, 1500)
		env.seedPlan(t, c.ID, twoSegmentSpans())
		markAnalyzed(t, env, c.ID, 0)
		require.NoError(t, env.stores.Segments.MarkFailed(ctx, c.ID, 1, "daily-quota"))

		require.NoError(t, fanin.TriggerCombination(ctx, CombinationPayload{ContentID: c.ID, AllowPartial: true}))

		j, err := env.client.Job.Query().
			Where(job.JobKeyEQ(CombineJobKey(c.ID))).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, j.Priority)
		assert.Equal(t, true, j.Payload["allowPartial"])
	})
}

// markAnalyzed settles one segment with a valid artifact.
func markAnalyzed(t *testing.T, env *testEnv, contentID string, index int) {
	t.Helper()
	artifact := map[string]interface{}{
		"category":       "gaming",
		"tone":           "humorous",
		"audience":       "general",
		"primary_topic":  "speedrunning",
		"summary":        "Segment summary.",
		"sponsored":      false,
		"entities":       []interface{}{"mario"},
		"themes":         []interface{}{"challenge"},
		"appeals":        []interface{}{"skill"},
		"classification": map[string]interface{}{"label": "entertainment", "confidence": 0.9},
	}
	require.NoError(t, env.stores.Segments.ClaimForAnalysis(context.Background(), contentID, index))
	require.NoError(t, env.stores.Segments.MarkAnalyzed(context.Background(), contentID, index,
		artifact, "gemini-2.5-flash", 1200, "segment-analysis-default@v1"))
}
