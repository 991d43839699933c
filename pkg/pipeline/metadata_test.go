package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
	"github.com/vidsage/vidsage/pkg/source"
)

func TestMetadataHandler_EnrichesVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)

	c, err := env.stores.Contents.CreateContent(ctx, services.CreateContentRequest{
		ChannelID:       ch.ID,
		ExternalVideoID: "v1",
		Title:           "snapshot title",
	})
	require.NoError(t, err)

	published := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	env.source.detailsFunc = func(_ context.Context, ids []string) ([]source.Item, error) {
		assert.Equal(t, []string{"v1"}, ids)
		return []source.Item{{
			ID:           "v1",
			Title:        "authoritative title",
			Description:  "full description",
			PublishedAt:  published,
			DurationSec:  1500,
			ViewCount:    4200,
			Thumbnail:    "https://img.example/v1.jpg",
			CanonicalURL: "https://www.youtube.com/watch?v=v1",
		}}, nil
	}

	handler := NewMetadataHandler(env.stores, env.source, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "fetch-metadata", MetadataPayload{ContentID: c.ID}, 0, 3), &pauseRecorder{})
	assert.True(t, res.Succeeded())

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateMetadataReady, got.State)
	assert.Equal(t, "authoritative title", got.Title)
	require.NotNil(t, got.DurationSec)
	assert.Equal(t, 1500, *got.DurationSec)
	require.NotNil(t, got.ViewCount)
	assert.Equal(t, int64(4200), *got.ViewCount)

	planJob, err := env.client.Job.Query().Where(job.QueueEQ("content-processing")).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, planJob.JobKey)
	assert.Equal(t, "plan:"+c.ID, *planJob.JobKey)
}

func TestMetadataHandler_VanishedItemFailsVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ch := env.seedChannel(t)

	c, err := env.stores.Contents.CreateContent(ctx, services.CreateContentRequest{
		ChannelID:       ch.ID,
		ExternalVideoID: "deleted",
		Title:           "gone",
	})
	require.NoError(t, err)

	handler := NewMetadataHandler(env.stores, env.source, env.queue, env.pipelineCfg)
	res := handler.Process(ctx, testJob(t, "fetch-metadata", MetadataPayload{ContentID: c.ID}, 0, 3), &pauseRecorder{})
	kind, _, failed := res.Failure()
	require.True(t, failed)
	assert.Equal(t, queue.FailValidation, kind)

	got, err := env.stores.Contents.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateFailed, got.State)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "not found")
}
