package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// detailsBatchSize is the YouTube Data API maximum for videos.list.
	detailsBatchSize = 50

	// listPageMax is the playlistItems.list page size ceiling.
	listPageMax = 50
)

// YouTube is the Provider implementation over the YouTube Data API v3.
type YouTube struct {
	service *youtube.Service
}

// NewYouTube creates a YouTube provider using API-key auth.
func NewYouTube(ctx context.Context, apiKey string) (*YouTube, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	return &YouTube{service: service}, nil
}

// ResolveUploadCollection resolves a channel's uploads playlist. Accepts
// either a raw channel ID (UC…) or an @handle.
func (y *YouTube) ResolveUploadCollection(ctx context.Context, channelExternalID string) (string, error) {
	call := y.service.Channels.List([]string{"contentDetails"}).Context(ctx)

	if handle, ok := strings.CutPrefix(channelExternalID, "@"); ok {
		call = call.ForHandle(handle)
	} else {
		call = call.Id(channelExternalID)
	}

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("resolving channel %s: %w", channelExternalID, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel %s not found", channelExternalID)
	}

	uploads := resp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("channel %s has no uploads playlist", channelExternalID)
	}

	slog.Debug("Resolved uploads playlist",
		"channel", channelExternalID, "playlist", uploads)
	return uploads, nil
}

// ListRecentItems pages through the uploads playlist, newest first.
func (y *YouTube) ListRecentItems(ctx context.Context, uploadCollectionID string, limit int, pageToken string) (ItemPage, error) {
	pageSize := int64(limit)
	if pageSize > listPageMax {
		pageSize = listPageMax
	}

	call := y.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(uploadCollectionID).
		MaxResults(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return ItemPage{}, fmt.Errorf("listing uploads of %s: %w", uploadCollectionID, err)
	}

	page := ItemPage{NextPageToken: resp.NextPageToken}
	for _, pi := range resp.Items {
		if pi.Snippet == nil || pi.Snippet.ResourceId == nil {
			continue
		}
		item := Item{
			ID:           pi.Snippet.ResourceId.VideoId,
			Title:        pi.Snippet.Title,
			Description:  pi.Snippet.Description,
			ChannelTitle: pi.Snippet.ChannelTitle,
			Thumbnail:    bestThumbnail(pi.Snippet.Thumbnails),
			CanonicalURL: watchURL(pi.Snippet.ResourceId.VideoId),
		}
		if ts, err := time.Parse(time.RFC3339, pi.Snippet.PublishedAt); err == nil {
			item.PublishedAt = ts
		}
		page.Items = append(page.Items, item)
	}

	return page, nil
}

// GetItemDetails fetches authoritative metadata in parallel batches of 50.
func (y *YouTube) GetItemDetails(ctx context.Context, ids []string) ([]Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var (
		mu    sync.Mutex
		items []Item
	)

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(ids); start += detailsBatchSize {
		batch := ids[start:min(start+detailsBatchSize, len(ids))]
		g.Go(func() error {
			resp, err := y.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
				Id(batch...).
				Context(gctx).
				Do()
			if err != nil {
				return fmt.Errorf("fetching video details: %w", err)
			}

			batchItems := make([]Item, 0, len(resp.Items))
			for _, v := range resp.Items {
				item, err := videoToItem(v)
				if err != nil {
					slog.Warn("Skipping video with unparseable metadata",
						"video_id", v.Id, "error", err)
					continue
				}
				batchItems = append(batchItems, item)
			}

			mu.Lock()
			items = append(items, batchItems...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// videoToItem maps a videos.list result onto the provider-neutral Item.
func videoToItem(v *youtube.Video) (Item, error) {
	item := Item{
		ID:           v.Id,
		CanonicalURL: watchURL(v.Id),
	}

	if v.Snippet != nil {
		item.Title = v.Snippet.Title
		item.Description = v.Snippet.Description
		item.ChannelTitle = v.Snippet.ChannelTitle
		item.Thumbnail = bestThumbnail(v.Snippet.Thumbnails)
		if ts, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			item.PublishedAt = ts
		}
	}

	if v.ContentDetails != nil {
		sec, err := ParseISODuration(v.ContentDetails.Duration)
		if err != nil {
			return Item{}, err
		}
		item.DurationSec = sec
	}

	if v.Statistics != nil {
		item.ViewCount = int64(v.Statistics.ViewCount)
	}

	return item, nil
}

// bestThumbnail prefers the highest-resolution thumbnail available.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, candidate := range []*youtube.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.Url != "" {
			return candidate.Url
		}
	}
	return ""
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
