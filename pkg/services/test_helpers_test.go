package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vidsage/vidsage/ent"
)

// seedChannel creates a channel row for tests that need a parent.
func seedChannel(t *testing.T, client *ent.Client) *ent.Channel {
	t.Helper()
	ch, err := NewChannelService(client).CreateChannel(context.Background(), CreateChannelRequest{
		ExternalID:  uuid.New().String(),
		DisplayName: "Test Channel",
	})
	require.NoError(t, err)
	return ch
}

// seedContent creates a discovered content row under the given channel.
func seedContent(t *testing.T, client *ent.Client, channelID string) *ent.Content {
	t.Helper()
	c, err := NewContentService(client).CreateContent(context.Background(), CreateContentRequest{
		ChannelID:       channelID,
		ExternalVideoID: uuid.New().String(),
		Title:           "Test Video",
	})
	require.NoError(t, err)
	return c
}
