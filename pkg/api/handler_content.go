package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/prompt"
	"github.com/vidsage/vidsage/ent/segment"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/pipeline"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/services"
)

// metadataRetryAttempts is the delivery budget of API-triggered metadata
// jobs, matching what discovery uses.
const metadataRetryAttempts = 3

// combineRequest is the body of POST /api/v1/contents/:id/combine.
type combineRequest struct {
	AllowPartial bool   `json:"allowPartial"`
	ForceModel   string `json:"forceModel"`
}

// resetRequest is the body of POST /api/v1/contents/:id/reset.
type resetRequest struct {
	// Full discards the segment plan entirely and re-runs planning;
	// otherwise only FAILED and OVERLOADED segments are retried.
	Full bool `json:"full"`
}

// analyzeContent re-runs the pipeline for one video, starting at the
// metadata stage.
func (s *Server) analyzeContent(c *gin.Context) {
	ctx := c.Request.Context()
	contentID := c.Param("id")

	if _, err := s.deps.Contents.GetContent(ctx, contentID); err != nil {
		respondError(c, err)
		return
	}

	j, err := s.deps.Queue.Enqueue(ctx, config.QueueContentMetadata, "fetch-metadata",
		pipeline.MetadataPayload{ContentID: contentID},
		queue.Options{
			Attempts:      metadataRetryAttempts,
			BackoffBaseMs: s.deps.Pipeline.BaseBackoffMs,
			JobKey:        "metadata:" + contentID,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "jobId": j.ID})
}

// combinationStatus reports the fan-in readiness of one video.
func (s *Server) combinationStatus(c *gin.Context) {
	readiness, err := s.deps.Fanin.Readiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "readiness": readiness})
}

// combineContent manually triggers combination, optionally over a
// partial segment set.
func (s *Server) combineContent(c *gin.Context) {
	ctx := c.Request.Context()
	contentID := c.Param("id")

	var req combineRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		badRequest(c, err)
		return
	}

	readiness, err := s.deps.Fanin.Readiness(ctx, contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	switch readiness.State {
	case pipeline.ReadinessReady:
	case pipeline.ReadinessPartial:
		if !req.AllowPartial {
			c.JSON(http.StatusConflict, gin.H{
				"success":   false,
				"error":     "video is partial; pass allowPartial to combine anyway",
				"readiness": readiness,
			})
			return
		}
	default:
		c.JSON(http.StatusConflict, gin.H{
			"success":   false,
			"error":     fmt.Sprintf("video is not combinable in readiness %s", readiness.State),
			"readiness": readiness,
		})
		return
	}

	err = s.deps.Fanin.TriggerCombination(ctx, pipeline.CombinationPayload{
		ContentID:    contentID,
		AllowPartial: req.AllowPartial,
		ForceModel:   req.ForceModel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "readiness": readiness})
}

// resetContent retries a video's failed work. The default reset returns
// FAILED and OVERLOADED segments to PENDING and re-enqueues their
// analysis jobs; a full reset discards the plan and re-runs planning.
func (s *Server) resetContent(c *gin.Context) {
	ctx := c.Request.Context()
	contentID := c.Param("id")

	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		badRequest(c, err)
		return
	}

	if _, err := s.deps.Contents.GetContent(ctx, contentID); err != nil {
		respondError(c, err)
		return
	}

	if req.Full {
		s.fullReset(c, contentID)
		return
	}

	reset, err := s.deps.Segments.ResetSegments(ctx, contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if reset == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "resetSegments": 0})
		return
	}

	err = s.deps.Contents.TransitionState(ctx, contentID,
		[]content.State{content.StateProcessing, content.StateAnalyzed, content.StateFailed},
		content.StateProcessing)
	if err != nil && !errors.Is(err, services.ErrConcurrentModification) {
		respondError(c, err)
		return
	}

	if err := s.enqueuePendingAnalysis(ctx, contentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "resetSegments": reset})
}

// fullReset drops the segment plan and re-runs planning from
// METADATA_READY.
func (s *Server) fullReset(c *gin.Context, contentID string) {
	ctx := c.Request.Context()

	deleted, err := s.deps.Segments.DeleteForContent(ctx, contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.deps.Contents.ResetForReprocessing(ctx, contentID); err != nil {
		respondError(c, err)
		return
	}

	j, err := s.deps.Queue.Enqueue(ctx, config.QueueContentProcessing, "plan-segments",
		pipeline.PlanningPayload{ContentID: contentID},
		queue.Options{
			Attempts:      metadataRetryAttempts,
			BackoffBaseMs: s.deps.Pipeline.BaseBackoffMs,
			JobKey:        "plan:" + contentID,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "deletedSegments": deleted, "jobId": j.ID})
}

// enqueuePendingAnalysis fans analysis jobs back out for a video's
// PENDING segments, mirroring the planning fan-out.
func (s *Server) enqueuePendingAnalysis(ctx context.Context, contentID string) error {
	ct, err := s.deps.Contents.GetContent(ctx, contentID)
	if err != nil {
		return err
	}
	sourceRef := ""
	if ct.CanonicalURL != nil {
		sourceRef = *ct.CanonicalURL
	}

	promptID := ""
	if p, err := s.deps.Prompts.ActivePrompt(ctx, prompt.PromptTypeSegmentAnalysis); err == nil {
		promptID = p.ID
	} else if !errors.Is(err, services.ErrNotFound) {
		return err
	}

	pending, err := s.deps.Segments.ListByState(ctx, contentID, segment.StatePending)
	if err != nil {
		return err
	}
	for _, seg := range pending {
		_, err := s.deps.Queue.Enqueue(ctx, config.QueueSegmentAnalysis, "analyze-segment",
			pipeline.AnalysisPayload{
				ContentID:         contentID,
				SegmentIndex:      seg.Index,
				ExternalSourceRef: sourceRef,
				PromptID:          promptID,
			}, queue.Options{
				Attempts:      s.deps.Pipeline.MaxAttemptsAnalysis,
				BackoffBaseMs: s.deps.Pipeline.BaseBackoffMs,
				JobKey:        fmt.Sprintf("analyze:%s:%d", contentID, seg.Index),
			})
		if err != nil {
			return err
		}
	}
	return nil
}
