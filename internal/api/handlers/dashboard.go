package handlers

import (
	"net/http"
	"strconv"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Dashboard counters
// @Description Per-status counts, today's arrivals and month-to-date intake against the plan limit
// @Tags dashboard
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Success 200 {object} service.DashboardStatsResponse "Counters"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	stats, err := h.service.GetStats(orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentActivity handles GET /api/v1/dashboard/recent-activity
// @Summary Recent mail item activity
// @Description Most recently updated mail items, newest first
// @Tags dashboard
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param limit query int false "Number of entries (1-50, default 10)"
// @Success 200 {array} service.ActivityEntry "Activity entries"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/recent-activity [get]
func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	activity, err := h.service.GetRecentActivity(orgID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recent activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}
