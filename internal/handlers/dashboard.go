package handlers

import (
	"log"
	"net/http"

	apierrors "github.com/arialabs/aria-backend/internal/errors"
	"github.com/arialabs/aria-backend/internal/middleware"
	"github.com/arialabs/aria-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only dashboard summary.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns aggregate counts plus the illustrative activity feed.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.dashboardService.Stats(userID)
	if err != nil {
		log.Printf("dashboard error: %v", err)
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           stats,
		"recent_activity": h.dashboardService.RecentActivity(),
	})
}
