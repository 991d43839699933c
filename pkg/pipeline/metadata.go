package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
	"github.com/vidsage/vidsage/pkg/source"
)

// MetadataHandler fetches authoritative video details and advances the
// video into chunk planning.
type MetadataHandler struct {
	stores Stores
	source source.Provider
	queue  *queue.Service
	cfg    *config.PipelineConfig
}

// NewMetadataHandler creates the content-metadata handler.
func NewMetadataHandler(stores Stores, src source.Provider, q *queue.Service, cfg *config.PipelineConfig) *MetadataHandler {
	stores.validate()
	if src == nil || q == nil || cfg == nil {
		panic("NewMetadataHandler: source, queue, and config are required")
	}
	return &MetadataHandler{stores: stores, source: src, queue: q, cfg: cfg}
}

// Process enriches one video.
func (h *MetadataHandler) Process(ctx context.Context, j *ent.Job, _ queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	var payload MetadataPayload
	if err := queue.DecodePayload(j, &payload); err != nil {
		return queue.Failed(queue.FailValidation, err)
	}

	c, err := h.stores.Contents.GetContent(ctx, payload.ContentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return queue.Failed(queue.FailValidation, err)
		}
		return queue.Failed(queue.FailTransient, err)
	}

	items, err := h.source.GetItemDetails(ctx, []string{c.ExternalVideoID})
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}
	if len(items) == 0 {
		// The provider no longer knows the video (deleted or private).
		reason := fmt.Sprintf("source item %s not found", c.ExternalVideoID)
		if err := h.stores.Contents.SetFailed(ctx, c.ID, reason); err != nil {
			return queue.Failed(queue.FailTransient, err)
		}
		return queue.Failed(queue.FailValidation, errors.New(reason))
	}

	item := items[0]
	patch := services.MetadataPatch{
		Title:       &item.Title,
		Description: &item.Description,
		DurationSec: &item.DurationSec,
		ViewCount:   &item.ViewCount,
	}
	if !item.PublishedAt.IsZero() {
		publishedAt := item.PublishedAt
		patch.PublishedAt = &publishedAt
	}
	if item.Thumbnail != "" {
		thumbnail := item.Thumbnail
		patch.Thumbnail = &thumbnail
	}
	if item.CanonicalURL != "" {
		canonicalURL := item.CanonicalURL
		patch.CanonicalURL = &canonicalURL
	}

	if _, err := h.stores.Contents.UpdateMetadata(ctx, c.ID, patch); err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	_, err = h.queue.Enqueue(ctx, config.QueueContentProcessing, "plan-segments",
		PlanningPayload{ContentID: c.ID}, queue.Options{
			Attempts:      3,
			BackoffBaseMs: h.cfg.BaseBackoffMs,
			JobKey:        "plan:" + c.ID,
		})
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	slog.Info("Video metadata enriched",
		"content_id", c.ID, "duration_sec", item.DurationSec, "view_count", item.ViewCount)
	return queue.Success()
}
