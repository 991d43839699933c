package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/pipeline"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
	"github.com/vidsage/vidsage/pkg/services"
	testdb "github.com/vidsage/vidsage/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer wires a real router over a test database.
type testServer struct {
	router   *gin.Engine
	client   *ent.Client
	channels *services.ChannelService
	contents *services.ContentService
	segments *services.SegmentService
	queue    *queue.Service
	ledger   *quota.Ledger
	quotas   *services.QuotaService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testdb.NewTestClient(t)

	channels := services.NewChannelService(db.Client)
	contents := services.NewContentService(db.Client)
	segments := services.NewSegmentService(db.Client)
	prompts := services.NewPromptService(db.Client)
	quotas := services.NewQuotaService(db.Client)
	require.NoError(t, prompts.EnsureDefaults(context.Background()))

	q := queue.NewService(db.Client)
	channels.SetScheduler(pipeline.NewScheduleAdapter(q))

	cfg := config.DefaultPipelineConfig()
	ledger := quota.NewLedger(context.Background(), config.TierFree)

	server := NewServer(Deps{
		DB:       db,
		Channels: channels,
		Contents: contents,
		Segments: segments,
		Prompts:  prompts,
		Quotas:   quotas,
		Queue:    q,
		Fanin:    pipeline.NewFanin(contents, segments, q, cfg),
		Ledger:   ledger,
		Pipeline: cfg,
	})

	return &testServer{
		router:   server.Router(),
		client:   db.Client,
		channels: channels,
		contents: contents,
		segments: segments,
		queue:    q,
		ledger:   ledger,
		quotas:   quotas,
	}
}

// do performs one request and decodes the JSON body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded),
		"response body must be JSON: %s", rec.Body.String())
	return rec.Code, decoded
}

// seedChannel registers a channel directly through the service layer.
func (ts *testServer) seedChannel(t *testing.T) *ent.Channel {
	t.Helper()
	ch, err := ts.channels.CreateChannel(context.Background(), services.CreateChannelRequest{
		SourceType:  "youtube",
		ExternalID:  "UC" + uuid.NewString()[:8],
		DisplayName: "Test Channel",
	})
	require.NoError(t, err)
	return ch
}

// seedContent creates a metadata-ready video.
func (ts *testServer) seedContent(t *testing.T, channelID string, durationSec int) *ent.Content {
	t.Helper()
	ctx := context.Background()
	c, err := ts.contents.CreateContent(ctx, services.CreateContentRequest{
		ChannelID:       channelID,
		ExternalVideoID: "vid-" + uuid.NewString()[:8],
		Title:           "Test Video",
	})
	require.NoError(t, err)
	url := "https://www.youtube.com/watch?v=" + c.ExternalVideoID
	c, err = ts.contents.UpdateMetadata(ctx, c.ID, services.MetadataPatch{
		DurationSec:  &durationSec,
		CanonicalURL: &url,
	})
	require.NoError(t, err)
	return c
}

// seedPlan commits a two-segment plan.
func (ts *testServer) seedPlan(t *testing.T, contentID string) {
	t.Helper()
	_, err := ts.segments.CreatePlanBulk(context.Background(), contentID, []services.SegmentSpan{
		{Index: 0, StartSec: 0, EndSec: 900},
		{Index: 1, StartSec: 870, EndSec: 1500},
	})
	require.NoError(t, err)
}

// markAnalyzed settles one segment with a minimal valid artifact.
func (ts *testServer) markAnalyzed(t *testing.T, contentID string, index int) {
	t.Helper()
	ctx := context.Background()
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
	require.NoError(t, ts.segments.ClaimForAnalysis(ctx, contentID, index))
	require.NoError(t, ts.segments.MarkAnalyzed(ctx, contentID, index,
		artifact, "gemini-2.5-flash", 1200, "segment-analysis-default@v1"))
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
