package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/pkg/source"
)

func TestStatsHandler_AppendsObservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)
	c := env.seedContent(t, ch.ID, 600)

	env.source.detailsFunc = func(_ context.Context, ids []string) ([]source.Item, error) {
		assert.Equal(t, []string{c.ExternalVideoID}, ids)
		return []source.Item{{ID: c.ExternalVideoID, ViewCount: 12345}}, nil
	}

	handler := NewStatsHandler(env.stores, env.source, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "refresh-stats", StatsPayload{ContentID: c.ID}, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Statistics, 1)
	point := got.Statistics[0]
	assert.Equal(t, float64(12345), point["viewCount"])

	observedAt, err := time.Parse(time.RFC3339, point["observedAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), observedAt, time.Minute)

	// A second sweep appends, never overwrites.
	res = handler.Process(ctx, testJob(t, "refresh-stats", StatsPayload{ContentID: c.ID}, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err = env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Statistics, 2)
}

func TestStatsHandler_FailuresNeverFailTheJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	handler := NewStatsHandler(env.stores, env.source, env.pipelineCfg)

	t.Run("empty content id", func(t *testing.T) {
		res := handler.Process(ctx, testJob(t, "refresh-stats", StatsPayload{}, 0, 1), &pauseRecorder{})
		assert.True(t, res.Succeeded())
	})

	t.Run("missing content", func(t *testing.T) {
		res := handler.Process(ctx, testJob(t, "refresh-stats", StatsPayload{ContentID: "gone"}, 0, 1), &pauseRecorder{})
		assert.True(t, res.Succeeded())
	})

	t.Run("provider fault", func(t *testing.T) {
		ch := env.seedChannel(t)
		c := env.seedContent(t, ch.ID, 600)
		env.source.detailsFunc = func(context.Context, []string) ([]source.Item, error) {
			return nil, errors.New("upstream 500")
		}

		res := handler.Process(ctx, testJob(t, "refresh-stats", StatsPayload{ContentID: c.ID}, 0, 1), &pauseRecorder{})
		assert.True(t, res.Succeeded())

		got, err := env.stores.Contents.GetContent(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Statistics)
	})
}
