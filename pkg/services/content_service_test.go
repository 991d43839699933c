package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/content"
	testdb "github.com/vidsage/vidsage/test/database"
)

func TestContentService_CreateContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)

	t.Run("creates in state discovered", func(t *testing.T) {
		c, err := svc.CreateContent(ctx, CreateContentRequest{
			ChannelID:       ch.ID,
			ExternalVideoID: "vid-1",
			Title:           "First Upload",
		})
		require.NoError(t, err)
		assert.Equal(t, content.StateDiscovered, c.State)
	})

	t.Run("duplicate external video id", func(t *testing.T) {
		_, err := svc.CreateContent(ctx, CreateContentRequest{
			ChannelID:       ch.ID,
			ExternalVideoID: "vid-1",
			Title:           "Same Upload",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.CreateContent(ctx, CreateContentRequest{
			ChannelID:       ch.ID,
			ExternalVideoID: "vid-2",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestContentService_UpdateMetadata(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)

	duration := 480
	views := int64(12345)
	published := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	updated, err := svc.UpdateMetadata(ctx, c.ID, MetadataPatch{
		DurationSec: &duration,
		ViewCount:   &views,
		PublishedAt: &published,
	})
	require.NoError(t, err)
	assert.Equal(t, content.StateMetadataReady, updated.State)
	require.NotNil(t, updated.DurationSec)
	assert.Equal(t, 480, *updated.DurationSec)
	// Fields absent from the patch stay put.
	assert.Equal(t, "Test Video", updated.Title)

	// Re-applying the same patch converges.
	again, err := svc.UpdateMetadata(ctx, c.ID, MetadataPatch{DurationSec: &duration})
	require.NoError(t, err)
	assert.Equal(t, *updated.DurationSec, *again.DurationSec)
}

func TestContentService_TransitionState(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)

	t.Run("moves from expected state", func(t *testing.T) {
		err := svc.TransitionState(ctx, c.ID,
			[]content.State{content.StateDiscovered}, content.StateMetadataReady)
		require.NoError(t, err)
	})

	t.Run("guards against unexpected state", func(t *testing.T) {
		err := svc.TransitionState(ctx, c.ID,
			[]content.State{content.StateDiscovered}, content.StateMetadataReady)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("missing content", func(t *testing.T) {
		err := svc.TransitionState(ctx, "nope",
			[]content.State{content.StateDiscovered}, content.StateMetadataReady)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContentService_SetCombined(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)

	require.NoError(t, svc.SetFailed(ctx, c.ID, "transient outage"))

	combined := map[string]interface{}{"summary": "one cohesive video"}
	require.NoError(t, svc.SetCombined(ctx, c.ID, combined, []string{"gemini-2.5-pro"}, "1"))

	got, err := svc.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateAnalyzed, got.State)
	assert.Equal(t, combined, got.CombinedAnalysis)
	assert.Equal(t, []string{"gemini-2.5-pro"}, got.ModelsUsed)
	assert.NotNil(t, got.CombinedAt)
	// A successful combination clears the stale failure reason.
	assert.Nil(t, got.LastError)
}

func TestContentService_ResetForReprocessing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)

	require.NoError(t, svc.SetCombined(ctx, c.ID,
		map[string]interface{}{"summary": "old"}, []string{"gemini-2.5-flash"}, "1"))

	require.NoError(t, svc.ResetForReprocessing(ctx, c.ID))

	got, err := svc.GetContent(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StateMetadataReady, got.State)
	assert.Nil(t, got.CombinedAnalysis)
	assert.Empty(t, got.ModelsUsed)
	assert.Nil(t, got.ExpectedSegmentCount)
	assert.Nil(t, got.CombinedAt)
}

func TestContentService_AppendStatistics(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContentService(client.Client)
	ctx := context.Background()
	ch := seedChannel(t, client.Client)
	c := seedContent(t, client.Client, ch.ID)

	require.NoError(t, svc.AppendStatistics(ctx, c.ID,
		map[string]interface{}{"views": float64(100)}))
	require.NoError(t, svc.AppendStatistics(ctx, c.ID,
		map[string]interface{}{"views": float64(250)}))

	got, err := svc.GetContent(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Statistics, 2)
	assert.Equal(t, float64(100), got.Statistics[0]["views"])
	assert.Equal(t, float64(250), got.Statistics[1]["views"])
}
