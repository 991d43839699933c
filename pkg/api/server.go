// Package api exposes the inbound HTTP control surface: channel
// administration, manual pipeline triggers, quota status, and health.
// The pipeline itself runs on the queue; every mutating endpoint only
// enqueues work or flips persisted state.
package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/database"
	"github.com/vidsage/vidsage/pkg/pipeline"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
	"github.com/vidsage/vidsage/pkg/services"
)

// Deps carries the server's collaborators.
type Deps struct {
	DB       *database.Client
	Channels *services.ChannelService
	Contents *services.ContentService
	Segments *services.SegmentService
	Prompts  *services.PromptService
	Quotas   *services.QuotaService
	Queue    *queue.Service
	Fanin    *pipeline.Fanin
	Ledger   *quota.Ledger
	Pipeline *config.PipelineConfig

	// Pools is optional; when present /healthz reports per-queue worker
	// pool health.
	Pools []*queue.WorkerPool
}

// Server is the HTTP control surface.
type Server struct {
	deps Deps
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	if deps.DB == nil || deps.Channels == nil || deps.Contents == nil ||
		deps.Segments == nil || deps.Prompts == nil || deps.Quotas == nil ||
		deps.Queue == nil || deps.Fanin == nil || deps.Ledger == nil || deps.Pipeline == nil {
		panic("NewServer: all dependencies except Pools are required")
	}
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/channels", s.createChannel)
		v1.GET("/channels", s.listChannels)
		v1.GET("/channels/:id", s.getChannel)
		v1.PATCH("/channels/:id", s.updateChannel)
		v1.DELETE("/channels/:id", s.deleteChannel)
		v1.POST("/channels/:id/discover", s.discoverChannel)

		v1.POST("/contents/:id/analyze", s.analyzeContent)
		v1.GET("/contents/:id/combination", s.combinationStatus)
		v1.POST("/contents/:id/combine", s.combineContent)
		v1.POST("/contents/:id/reset", s.resetContent)

		v1.GET("/quota/status", s.quotaStatus)
	}

	return router
}

// requestLogger logs one line per request at debug, errors at warn.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			slog.Warn("Request failed", attrs...)
			return
		}
		slog.Debug("Request served", attrs...)
	}
}
