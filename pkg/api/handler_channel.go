package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/pipeline"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
)

// createChannelRequest is the body of POST /api/v1/channels.
type createChannelRequest struct {
	SourceType    string `json:"sourceType"`
	ExternalID    string `json:"externalId" binding:"required"`
	DisplayName   string `json:"displayName" binding:"required"`
	CronPattern   string `json:"cronPattern"`
	FetchLastN    int    `json:"fetchLastN"`
	AuthorContext string `json:"authorContext"`
}

// updateChannelRequest is the body of PATCH /api/v1/channels/:id. Absent
// fields are left unchanged.
type updateChannelRequest struct {
	DisplayName   *string `json:"displayName"`
	CronPattern   *string `json:"cronPattern"`
	FetchLastN    *int    `json:"fetchLastN"`
	AuthorContext *string `json:"authorContext"`
}

// discoverRequest is the body of POST /api/v1/channels/:id/discover.
type discoverRequest struct {
	InitialFetch bool `json:"initialFetch"`
}

// discoveryTriggerPriority ranks manual discovery above cron ticks.
const discoveryTriggerPriority = 5

func (s *Server) createChannel(c *gin.Context) {
	var req createChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ch, err := s.deps.Channels.CreateChannel(c.Request.Context(), services.CreateChannelRequest{
		SourceType:    req.SourceType,
		ExternalID:    req.ExternalID,
		DisplayName:   req.DisplayName,
		CronPattern:   req.CronPattern,
		FetchLastN:    req.FetchLastN,
		AuthorContext: req.AuthorContext,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "channel": ch})
}

func (s *Server) listChannels(c *gin.Context) {
	channels, err := s.deps.Channels.ListChannels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "channels": channels})
}

func (s *Server) getChannel(c *gin.Context) {
	ch, err := s.deps.Channels.GetChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "channel": ch})
}

func (s *Server) updateChannel(c *gin.Context) {
	var req updateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ch, err := s.deps.Channels.UpdateChannel(c.Request.Context(), c.Param("id"), services.UpdateChannelRequest{
		DisplayName:   req.DisplayName,
		CronPattern:   req.CronPattern,
		FetchLastN:    req.FetchLastN,
		AuthorContext: req.AuthorContext,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "channel": ch})
}

func (s *Server) deleteChannel(c *gin.Context) {
	if err := s.deps.Channels.DeleteChannel(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// discoverChannel enqueues one on-demand discovery run for the channel,
// ahead of scheduled ticks.
func (s *Server) discoverChannel(c *gin.Context) {
	ctx := c.Request.Context()
	channelID := c.Param("id")

	var req discoverRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		badRequest(c, err)
		return
	}

	if _, err := s.deps.Channels.GetChannel(ctx, channelID); err != nil {
		respondError(c, err)
		return
	}

	j, err := s.deps.Queue.Enqueue(ctx, config.QueueChannelDiscovery, "discover",
		pipeline.DiscoveryPayload{ChannelID: channelID, InitialFetch: req.InitialFetch},
		queue.Options{Priority: discoveryTriggerPriority})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "jobId": j.ID})
}
