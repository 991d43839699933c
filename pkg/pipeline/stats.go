package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/source"
)

// StatsHandler appends a view-count sample to a video's statistics
// time-series. The stage is off the critical path: every failure is
// logged and swallowed so a provider hiccup never blocks the queue.
type StatsHandler struct {
	stores Stores
	source source.Provider
	cfg    *config.PipelineConfig
}

// NewStatsHandler creates the stats handler.
func NewStatsHandler(stores Stores, src source.Provider, cfg *config.PipelineConfig) *StatsHandler {
	stores.validate()
	if src == nil || cfg == nil {
		panic("NewStatsHandler: source and config are required")
	}
	return &StatsHandler{stores: stores, source: src, cfg: cfg}
}

// Process refreshes one video's statistics.
func (h *StatsHandler) Process(ctx context.Context, j *ent.Job, _ queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	var payload StatsPayload
	if err := queue.DecodePayload(j, &payload); err != nil {
		slog.Error("Malformed stats payload", "job_id", j.ID, "error", err)
		return queue.Success()
	}
	if payload.ContentID == "" {
		slog.Warn("Stats job without content id, skipping", "job_id", j.ID)
		return queue.Success()
	}

	if err := h.refresh(ctx, payload.ContentID); err != nil {
		slog.Warn("Statistics refresh failed", "content_id", payload.ContentID, "error", err)
	}
	return queue.Success()
}

func (h *StatsHandler) refresh(ctx context.Context, contentID string) error {
	c, err := h.stores.Contents.GetContent(ctx, contentID)
	if err != nil {
		return err
	}

	items, err := h.source.GetItemDetails(ctx, []string{c.ExternalVideoID})
	if err != nil || len(items) == 0 {
		return err
	}

	return h.stores.Contents.AppendStatistics(ctx, contentID, map[string]interface{}{
		"observedAt": time.Now().UTC().Format(time.RFC3339),
		"viewCount":  items[0].ViewCount,
	})
}
