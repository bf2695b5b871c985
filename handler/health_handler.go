package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/utils"
)

const storePingTimeout = 3 * time.Second

type HealthHandler struct {
	started time.Time
	ping    func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{
		started: time.Now(),
		ping:    ping,
	}
}

// Health is the liveness probe. It answers as long as the process is up,
// without touching the store.
func (h *HealthHandler) Health(c *gin.Context) {
	utils.OK(c)
}

// Status reports readiness plus a process snapshot. A failed store ping
// degrades the response to 503 so load balancers stop routing here.
func (h *HealthHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storePingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		utils.TrackError("database", "ping_failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ok":     false,
			"status": "degraded",
			"store": gin.H{
				"status": "error",
				"error":  err.Error(),
			},
		})
		return
	}

	memUsed, memPercent := utils.GetMemoryUsage()
	pool := utils.GetMongoMetrics()

	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory": gin.H{
			"used_bytes":   memUsed,
			"used_percent": memPercent,
		},
		"store": gin.H{
			"status":              "ok",
			"active_connections":  pool.ActiveConnections,
			"created_connections": pool.CreatedConnections,
			"closed_connections":  pool.ClosedConnections,
		},
	})
}
