package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/pkg/pipeline"
)

func TestChannelCRUD(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	var channelID string

	t.Run("create", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/api/v1/channels", map[string]any{
			"sourceType":  "youtube",
			"externalId":  "UCabc123",
			"displayName": "Creator",
			"cronPattern": "0 */6 * * *",
		})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, true, body["success"])

		ch := body["channel"].(map[string]interface{})
		channelID = ch["id"].(string)
		require.NotEmpty(t, channelID)

		// The repeatable discovery job is registered alongside the row.
		def, err := ts.client.CronJob.Query().
			Where(cronjob.StableIDEQ(pipeline.DiscoveryStableID(channelID))).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0 */6 * * *", def.CronPattern)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/api/v1/channels", map[string]any{
			"sourceType":  "youtube",
			"externalId":  "UCabc123",
			"displayName": "Creator again",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("missing display name is rejected", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/api/v1/channels", map[string]any{
			"externalId": "UCother",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("get and list", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/v1/channels/"+channelID, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Creator", body["channel"].(map[string]interface{})["display_name"])

		status, body = ts.do(t, http.MethodGet, "/api/v1/channels", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["channels"], 1)
	})

	t.Run("get unknown is 404", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/v1/channels/nope", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("update reschedules discovery", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPatch, "/api/v1/channels/"+channelID, map[string]any{
			"cronPattern": "0 */2 * * *",
		})
		require.Equal(t, http.StatusOK, status)

		def, err := ts.client.CronJob.Query().
			Where(cronjob.StableIDEQ(pipeline.DiscoveryStableID(channelID))).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0 */2 * * *", def.CronPattern)
	})

	t.Run("invalid cron is rejected", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPatch, "/api/v1/channels/"+channelID, map[string]any{
			"cronPattern": "whenever",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("delete removes the schedule", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodDelete, "/api/v1/channels/"+channelID, nil)
		require.Equal(t, http.StatusOK, status)

		n, err := ts.client.CronJob.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		status, _ = ts.do(t, http.MethodDelete, "/api/v1/channels/"+channelID, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestDiscoverChannel(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ch := ts.seedChannel(t)

	status, body := ts.do(t, http.MethodPost, "/api/v1/channels/"+ch.ID+"/discover", map[string]any{
		"initialFetch": true,
	})
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, true, body["success"])
	require.NotEmpty(t, body["jobId"])

	j, err := ts.client.Job.Query().Where(job.QueueEQ("channel-discovery")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "discover", j.Name)
	assert.Equal(t, discoveryTriggerPriority, j.Priority)
	assert.Equal(t, ch.ID, j.Payload["channelId"])
	assert.Equal(t, true, j.Payload["initialFetch"])
}

func TestDiscoverChannel_EmptyBodyAndUnknown(t *testing.T) {
	ts := newTestServer(t)
	ch := ts.seedChannel(t)

	status, _ := ts.do(t, http.MethodPost, "/api/v1/channels/"+ch.ID+"/discover", nil)
	assert.Equal(t, http.StatusAccepted, status, "the body is optional")

	status, _ = ts.do(t, http.MethodPost, "/api/v1/channels/nope/discover", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
