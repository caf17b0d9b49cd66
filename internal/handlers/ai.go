package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/arialabs/aria-backend/internal/errors"
	"github.com/arialabs/aria-backend/internal/middleware"
	"github.com/arialabs/aria-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AIHandler serves the simulated analysis and generation endpoints.
type AIHandler struct {
	aiService *services.AIService
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// Analyze returns a mock analysis of the submitted text.
func (h *AIHandler) Analyze(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AnalyzeRequest struct {
		Text string `json:"text"`
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"analysis":     h.aiService.Analyze(req.Text),
		"processed_at": time.Now().Format(time.RFC3339),
	})
}

// Generate returns mock content for the requested prompt and type.
func (h *AIHandler) Generate(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type GenerateRequest struct {
		Prompt string `json:"prompt"`
		Type   string `json:"type"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contentType := req.Type
	if contentType == "" {
		contentType = "general"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"content":      h.aiService.Generate(req.Prompt, contentType),
		"type":         contentType,
		"generated_at": time.Now().Format(time.RFC3339),
	})
}
