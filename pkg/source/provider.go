// Package source provides the video source provider abstraction and the
// YouTube Data API adapter behind it.
package source

import (
	"context"
	"time"
)

// Item is one video exposed by a source provider. Discovery sees the
// snapshot fields; the metadata stage fills the enriched ones via
// GetItemDetails.
type Item struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  time.Time
	DurationSec  int
	ViewCount    int64
	Thumbnail    string
	ChannelTitle string
	CanonicalURL string
}

// ItemPage is one page of recent items.
type ItemPage struct {
	Items         []Item
	NextPageToken string
}

// Provider is the outbound capability the discovery and metadata stages
// consume.
type Provider interface {
	// ResolveUploadCollection resolves a channel's canonical upload
	// collection identifier. Called once per channel; the result is
	// cached on the Channel record.
	ResolveUploadCollection(ctx context.Context, channelExternalID string) (string, error)

	// ListRecentItems fetches the most recent items of an upload
	// collection, newest first.
	ListRecentItems(ctx context.Context, uploadCollectionID string, limit int, pageToken string) (ItemPage, error)

	// GetItemDetails fetches authoritative metadata for the given item
	// IDs. Unknown IDs are silently absent from the result.
	GetItemDetails(ctx context.Context, ids []string) ([]Item, error)
}
