package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
	"github.com/vidsage/vidsage/pkg/services"
	"github.com/vidsage/vidsage/pkg/source"
	testdb "github.com/vidsage/vidsage/test/database"
)

// testEnv wires real services over a test database with fake outbound
// providers.
type testEnv struct {
	client      *ent.Client
	stores      Stores
	queue       *queue.Service
	source      *fakeSource
	ai          *fakeAI
	ledger      *quota.Ledger
	selector    *quota.Selector
	coordinator *quota.Coordinator
	pipelineCfg *config.PipelineConfig
	quotaCfg    *config.QuotaConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	stores := Stores{
		Channels: services.NewChannelService(client.Client),
		Contents: services.NewContentService(client.Client),
		Segments: services.NewSegmentService(client.Client),
		Prompts:  services.NewPromptService(client.Client),
		Quotas:   services.NewQuotaService(client.Client),
	}
	require.NoError(t, stores.Prompts.EnsureDefaults(context.Background()))

	ledger := quota.NewLedger(context.Background(), config.TierFree)
	return &testEnv{
		client:      client.Client,
		stores:      stores,
		queue:       queue.NewService(client.Client),
		source:      &fakeSource{},
		ai:          &fakeAI{},
		ledger:      ledger,
		selector:    quota.NewSelector(ledger),
		coordinator: quota.NewCoordinator(ledger, config.DefaultQueueConfig()),
		pipelineCfg: config.DefaultPipelineConfig(),
		quotaCfg:    config.DefaultQuotaConfig(),
	}
}

func (e *testEnv) fanin() *Fanin {
	return NewFanin(e.stores.Contents, e.stores.Segments, e.queue, e.pipelineCfg)
}

func (e *testEnv) analysisHandler() *AnalysisHandler {
	return NewAnalysisHandler(e.stores, e.ai, e.fanin(), e.ledger, e.selector, e.coordinator, e.pipelineCfg, e.quotaCfg)
}

func (e *testEnv) combinationHandler() *CombinationHandler {
	return NewCombinationHandler(e.stores, e.ai, e.fanin(), e.ledger, e.selector, e.coordinator, e.pipelineCfg, e.quotaCfg)
}

// seedChannel registers a channel ready for discovery.
func (e *testEnv) seedChannel(t *testing.T) *ent.Channel {
	t.Helper()
	ch, err := e.stores.Channels.CreateChannel(context.Background(), services.CreateChannelRequest{
		SourceType:  "youtube",
		ExternalID:  "UC" + uuid.NewString()[:8],
		DisplayName: "Test Channel",
	})
	require.NoError(t, err)
	return ch
}

// seedContent creates a metadata-ready video with the given duration.
func (e *testEnv) seedContent(t *testing.T, channelID string, durationSec int) *ent.Content {
	t.Helper()
	ctx := context.Background()
	c, err := e.stores.Contents.CreateContent(ctx, services.CreateContentRequest{
		ChannelID:       channelID,
		ExternalVideoID: "vid-" + uuid.NewString()[:8],
		Title:           "Test Video",
	})
	require.NoError(t, err)
	url := "https://www.youtube.com/watch?v=" + c.ExternalVideoID
	c, err = e.stores.Contents.UpdateMetadata(ctx, c.ID, services.MetadataPatch{
		DurationSec:  &durationSec,
		CanonicalURL: &url,
	})
	require.NoError(t, err)
	return c
}

// seedPlan commits the segment plan for a video.
func (e *testEnv) seedPlan(t *testing.T, contentID string, spans []services.SegmentSpan) {
	t.Helper()
	_, err := e.stores.Segments.CreatePlanBulk(context.Background(), contentID, spans)
	require.NoError(t, err)
}

// testJob builds an in-memory job row for direct handler invocation.
func testJob(t *testing.T, name string, payload any, attempts, maxAttempts int) *ent.Job {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	return &ent.Job{
		ID:          uuid.NewString(),
		Name:        name,
		Payload:     m,
		Attempts:    attempts,
		MaxAttempts: maxAttempts,
	}
}

// pauseRecorder records intake pauses handed to the worker.
type pauseRecorder struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (p *pauseRecorder) PauseIntake(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauses = append(p.pauses, d)
}

// fakeSource scripts the source provider per test.
type fakeSource struct {
	resolveFunc func(ctx context.Context, externalID string) (string, error)
	listFunc    func(ctx context.Context, collectionID string, limit int, pageToken string) (source.ItemPage, error)
	detailsFunc func(ctx context.Context, ids []string) ([]source.Item, error)
}

func (f *fakeSource) ResolveUploadCollection(ctx context.Context, externalID string) (string, error) {
	if f.resolveFunc == nil {
		return "UU" + externalID, nil
	}
	return f.resolveFunc(ctx, externalID)
}

func (f *fakeSource) ListRecentItems(ctx context.Context, collectionID string, limit int, pageToken string) (source.ItemPage, error) {
	if f.listFunc == nil {
		return source.ItemPage{}, nil
	}
	return f.listFunc(ctx, collectionID, limit, pageToken)
}

func (f *fakeSource) GetItemDetails(ctx context.Context, ids []string) ([]source.Item, error) {
	if f.detailsFunc == nil {
		return nil, nil
	}
	return f.detailsFunc(ctx, ids)
}

// fakeAI scripts the AI provider per test.
type fakeAI struct {
	mu       sync.Mutex
	calls    int
	generate func(ctx context.Context, model string, parts []ai.PromptPart, cfg ai.GenerateConfig) (<-chan ai.Chunk, error)
}

func (f *fakeAI) GenerateStructured(ctx context.Context, model string, parts []ai.PromptPart, cfg ai.GenerateConfig) (<-chan ai.Chunk, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.generate == nil {
		return streamOf(validArtifactJSON, 100), nil
	}
	return f.generate(ctx, model, parts, cfg)
}

func (f *fakeAI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// streamOf returns a closed stream carrying the text and a terminal
// usage chunk.
func streamOf(text string, tokens int) <-chan ai.Chunk {
	ch := make(chan ai.Chunk, 2)
	ch <- ai.Chunk{Text: text}
	ch <- ai.Chunk{Done: true, InputTokens: tokens / 2, OutputTokens: tokens - tokens/2}
	close(ch)
	return ch
}

// streamErr returns a stream that fails with the given error.
func streamErr(err error) <-chan ai.Chunk {
	ch := make(chan ai.Chunk, 1)
	ch <- ai.Chunk{Err: err}
	close(ch)
	return ch
}

const validArtifactJSON = `{
	"category": "gaming",
	"tone": "humorous",
	"audience": "general",
	"primary_topic": "speedrunning",
	"summary": "The creator attempts a speedrun.",
	"sponsored": false,
	"entities": ["mario"],
	"themes": ["challenge"],
	"appeals": ["skill"],
	"classification": {"label": "entertainment", "confidence": 0.9}
}`

// quotaAPIError builds a provider 429 with structured quota details.
func quotaAPIError(quotaID, retryDelay string) error {
	details := []map[string]any{{
		"@type": "type.googleapis.com/google.rpc.QuotaFailure",
		"violations": []any{
			map[string]any{"quotaId": quotaID},
		},
	}}
	if retryDelay != "" {
		details = append(details, map[string]any{
			"@type":      "type.googleapis.com/google.rpc.RetryInfo",
			"retryDelay": retryDelay,
		})
	}
	return genai.APIError{Code: 429, Message: "quota exceeded", Details: details}
}
