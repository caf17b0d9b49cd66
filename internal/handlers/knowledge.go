package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/arialabs/aria-backend/internal/dto"
	apierrors "github.com/arialabs/aria-backend/internal/errors"
	"github.com/arialabs/aria-backend/internal/middleware"
	"github.com/arialabs/aria-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// KnowledgeHandler coordinates knowledge base HTTP handlers.
type KnowledgeHandler struct {
	knowledgeService *services.KnowledgeService
}

// NewKnowledgeHandler creates a new KnowledgeHandler
func NewKnowledgeHandler(knowledgeService *services.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

// ListEntries returns the current user's knowledge entries, newest first.
func (h *KnowledgeHandler) ListEntries(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	entries, err := h.knowledgeService.List(userID)
	if err != nil {
		log.Printf("list knowledge error: %v", err)
		apierrors.InternalError(c, "Failed to fetch knowledge entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"knowledge": dto.ToKnowledgeEntryDTOs(entries),
	})
}

// CreateEntry appends a knowledge entry for the current user.
func (h *KnowledgeHandler) CreateEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateEntryRequest struct {
		Title    string   `json:"title" binding:"required"`
		Content  string   `json:"content" binding:"required"`
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.knowledgeService.Create(services.CreateKnowledgeEntryInput{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrKnowledgeTitleRequired),
			errors.Is(err, services.ErrKnowledgeContentRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Printf("create knowledge error: %v", err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Knowledge entry created successfully",
		"knowledge_id": entry.ID,
	})
}
