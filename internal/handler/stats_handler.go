package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// StatsHandler serves dashboard aggregates.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to compute statistics")
		return
	}
	utils.Success(c, 200, "Statistics retrieved successfully", stats)
}
