package handlers

import (
	"net/http"
	"time"

	"github.com/arialabs/aria-backend/internal/config"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves the unauthenticated liveness endpoint.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check reports service identity and current time.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   h.cfg.ServiceName,
		"version":   h.cfg.ServiceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
