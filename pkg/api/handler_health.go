package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidsage/vidsage/pkg/database"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthResponse is returned by GET /healthz.
type healthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Pools    []*queue.PoolHealth    `json:"pools,omitempty"`
}

// health reports liveness: database reachability plus worker pool state.
// Only the process's own components are checked; outbound providers are
// deliberately excluded so their outages never restart this service.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy

	dbHealth, err := database.Health(ctx, s.deps.DB.DB())
	if err != nil {
		status = healthStatusUnhealthy
	}

	pools := make([]*queue.PoolHealth, 0, len(s.deps.Pools))
	for _, pool := range s.deps.Pools {
		h := pool.Health()
		pools = append(pools, h)
		if h != nil && !h.IsHealthy && status == healthStatusHealthy {
			status = healthStatusDegraded
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, healthResponse{
		Status:   status,
		Version:  version.Full(),
		Database: dbHealth,
		Pools:    pools,
	})
}
