package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	driver string
	store  store.Backend
}

// NewHealthHandler creates a new HealthHandler for the given store backend.
func NewHealthHandler(driver string, backend store.Backend) *HealthHandler {
	return &HealthHandler{driver: driver, store: backend}
}

// GetHealth responds with service and record store status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	storeStatus := "connected"
	if p, ok := h.store.(store.Pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			storeStatus = "disconnected"
		}
	}

	code, status := 200, "healthy"
	if storeStatus != "connected" {
		code, status = 503, "degraded"
	}

	utils.Success(c, code, "Service is "+status, gin.H{
		"status":  status,
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"store": gin.H{
			"driver": h.driver,
			"status": storeStatus,
		},
	})
}
