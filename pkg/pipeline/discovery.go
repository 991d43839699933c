package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vidsage/vidsage/ent"
	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
	"github.com/vidsage/vidsage/pkg/source"
)

// DiscoveryHandler polls a channel's upload collection and creates
// Content records for unknown videos.
type DiscoveryHandler struct {
	stores Stores
	source source.Provider
	queue  *queue.Service
	cfg    *config.PipelineConfig
}

// NewDiscoveryHandler creates the channel-discovery handler.
func NewDiscoveryHandler(stores Stores, src source.Provider, q *queue.Service, cfg *config.PipelineConfig) *DiscoveryHandler {
	stores.validate()
	if src == nil || q == nil || cfg == nil {
		panic("NewDiscoveryHandler: source, queue, and config are required")
	}
	return &DiscoveryHandler{stores: stores, source: src, queue: q, cfg: cfg}
}

// Process runs one discovery pass.
func (h *DiscoveryHandler) Process(ctx context.Context, j *ent.Job, _ queue.WorkerControl) queue.Result {
	ctx, cancel := stageContext(ctx, h.cfg)
	defer cancel()

	var payload DiscoveryPayload
	if err := queue.DecodePayload(j, &payload); err != nil {
		return queue.Failed(queue.FailValidation, err)
	}

	ch, err := h.stores.Channels.GetChannel(ctx, payload.ChannelID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// The channel was deleted after the job was enqueued.
			return queue.Failed(queue.FailValidation, err)
		}
		return queue.Failed(queue.FailTransient, err)
	}

	if ch.SourceType != channel.SourceTypeYoutube {
		slog.Info("Skipping discovery for unsupported source type",
			"channel_id", ch.ID, "source_type", ch.SourceType)
		return queue.Success()
	}

	collectionID, err := h.uploadCollection(ctx, ch)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	limit := ch.FetchLastN
	if payload.InitialFetch && h.cfg.InitialFetchLimit > limit {
		limit = h.cfg.InitialFetchLimit
	}

	created, seen, err := h.ingestRecent(ctx, ch, collectionID, limit, payload.InitialFetch)
	if err != nil {
		return queue.Failed(queue.FailTransient, err)
	}

	slog.Info("Discovery pass finished",
		"channel_id", ch.ID, "seen", seen, "created", created, "initial_fetch", payload.InitialFetch)
	return queue.Success()
}

// uploadCollection returns the channel's upload collection ID, resolving
// and caching it on first use.
func (h *DiscoveryHandler) uploadCollection(ctx context.Context, ch *ent.Channel) (string, error) {
	if ch.UploadCollectionID != nil && *ch.UploadCollectionID != "" {
		return *ch.UploadCollectionID, nil
	}

	collectionID, err := h.source.ResolveUploadCollection(ctx, ch.ExternalID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upload collection for channel %s: %w", ch.ID, err)
	}
	if err := h.stores.Channels.SetUploadCollectionID(ctx, ch.ID, collectionID); err != nil {
		return "", err
	}
	return collectionID, nil
}

// ingestRecent walks recent items, creating unknown videos and chaining
// each new one into the metadata queue. Known videos are no-ops.
func (h *DiscoveryHandler) ingestRecent(ctx context.Context, ch *ent.Channel, collectionID string, limit int, initialFetch bool) (created, seen int, err error) {
	pageToken := ""
	for seen < limit {
		page, err := h.source.ListRecentItems(ctx, collectionID, limit-seen, pageToken)
		if err != nil {
			return created, seen, fmt.Errorf("failed to list recent items: %w", err)
		}
		if len(page.Items) == 0 {
			break
		}

		for _, item := range page.Items {
			seen++
			if initialFetch && !h.cfg.PublishedAfter.IsZero() && item.PublishedAt.Before(h.cfg.PublishedAfter) {
				continue
			}
			ok, err := h.ingestItem(ctx, ch, item)
			if err != nil {
				return created, seen, err
			}
			if ok {
				created++
			}
			if seen >= limit {
				break
			}
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return created, seen, nil
}

func (h *DiscoveryHandler) ingestItem(ctx context.Context, ch *ent.Channel, item source.Item) (bool, error) {
	req := services.CreateContentRequest{
		ChannelID:       ch.ID,
		ExternalVideoID: item.ID,
		Title:           item.Title,
		Description:     item.Description,
	}
	if !item.PublishedAt.IsZero() {
		publishedAt := item.PublishedAt
		req.PublishedAt = &publishedAt
	}
	if item.Thumbnail != "" {
		thumbnail := item.Thumbnail
		req.Thumbnail = &thumbnail
	}
	if item.CanonicalURL != "" {
		canonicalURL := item.CanonicalURL
		req.CanonicalURL = &canonicalURL
	}

	c, err := h.stores.Contents.CreateContent(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	_, err = h.queue.Enqueue(ctx, config.QueueContentMetadata, "fetch-metadata",
		MetadataPayload{ContentID: c.ID}, queue.Options{
			Attempts:      3,
			BackoffBaseMs: h.cfg.BaseBackoffMs,
			JobKey:        "metadata:" + c.ID,
		})
	if err != nil {
		return true, err
	}
	return true, nil
}
