package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/source"
)

func discoveryItems(ids ...string) []source.Item {
	items := make([]source.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, source.Item{
			ID:          id,
			Title:       "Video " + id,
			PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return items
}

func TestDiscoveryHandler_CreatesUnknownVideos(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)

	env.source.listFunc = func(_ context.Context, collectionID string, limit int, pageToken string) (source.ItemPage, error) {
		assert.Equal(t, "UU"+ch.ExternalID, collectionID)
		return source.ItemPage{Items: discoveryItems("v1", "v2")}, nil
	}

	handler := NewDiscoveryHandler(env.stores, env.source, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "discover", DiscoveryPayload{ChannelID: ch.ID}, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	// Upload collection cached on the channel.
	got, err := env.stores.Channels.GetChannel(ctx, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UploadCollectionID)
	assert.Equal(t, "UU"+ch.ExternalID, *got.UploadCollectionID)

	// One content row and one metadata job per unknown video.
	contents, err := env.stores.Contents.ListContentsByChannel(ctx, ch.ID)
	require.NoError(t, err)
	assert.Len(t, contents, 2)

	n, err := env.client.Job.Query().Where(job.QueueEQ("content-metadata")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A second pass over the same items creates nothing new.
	res = handler.Process(ctx, testJob(t, "discover", DiscoveryPayload{ChannelID: ch.ID}, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	contents, err = env.stores.Contents.ListContentsByChannel(ctx, ch.ID)
	require.NoError(t, err)
	assert.Len(t, contents, 2)
}

func TestDiscoveryHandler_InitialFetchFiltersOldItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)

	old := source.Item{ID: "ancient", Title: "Old", PublishedAt: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}
	env.source.listFunc = func(_ context.Context, _ string, limit int, _ string) (source.ItemPage, error) {
		assert.Equal(t, env.pipelineCfg.InitialFetchLimit, limit, "initial fetch widens the window")
		return source.ItemPage{Items: append(discoveryItems("fresh"), old)}, nil
	}

	handler := NewDiscoveryHandler(env.stores, env.source, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "discover", DiscoveryPayload{ChannelID: ch.ID, InitialFetch: true}, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	contents, err := env.stores.Contents.ListContentsByChannel(ctx, ch.ID)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "fresh", contents[0].ExternalVideoID)
}

func TestDiscoveryHandler_UnsupportedSourceIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)
	require.NoError(t, env.client.Channel.UpdateOneID(ch.ID).
		SetSourceType(channel.SourceTypeTelegram).
		Exec(ctx))

	handler := NewDiscoveryHandler(env.stores, env.source, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "discover", DiscoveryPayload{ChannelID: ch.ID}, 0, 1), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	n, err := env.client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDiscoveryHandler_Failures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("deleted channel is terminal", func(t *testing.T) {
		handler := NewDiscoveryHandler(env.stores, env.source, env.queue, env.pipelineCfg)
		res := handler.Process(ctx, testJob(t, "discover", DiscoveryPayload{ChannelID: "gone"}, 0, 1), &pauseRecorder{})
		kind, _, failed := res.Failure()
		require.True(t, failed)
		assert.Equal(t, queue.FailValidation, kind)
	})

	t.Run("provider fault retries", func(t *testing.T) {
		ch := env.seedChannel(t)
		env.source.listFunc = func(context.Context, string, int, string) (source.ItemPage, error) {
			return source.ItemPage{}, errors.New("upstream 500")
		}
		handler := NewDiscoveryHandler(env.stores, env.source, env.queue, env.pipelineCfg)
		res := handler.Process(ctx, testJob(t, "discover", DiscoveryPayload{ChannelID: ch.ID}, 0, 3), &pauseRecorder{})
		kind, _, failed := res.Failure()
		require.True(t, failed)
		assert.Equal(t, queue.FailTransient, kind)
	})
}
