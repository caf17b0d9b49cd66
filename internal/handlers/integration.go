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

// IntegrationHandler coordinates integration HTTP handlers.
type IntegrationHandler struct {
	integrationService *services.IntegrationService
}

// NewIntegrationHandler creates a new IntegrationHandler
func NewIntegrationHandler(integrationService *services.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{integrationService: integrationService}
}

// ListIntegrations returns the current user's integrations.
func (h *IntegrationHandler) ListIntegrations(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	integrations, err := h.integrationService.List(userID)
	if err != nil {
		log.Printf("list integrations error: %v", err)
		apierrors.InternalError(c, "Failed to fetch integrations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"integrations": dto.ToIntegrationDTOs(integrations),
	})
}

// CreateIntegration registers an integration for the current user. The config
// document is stored opaquely.
func (h *IntegrationHandler) CreateIntegration(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateIntegrationRequest struct {
		Name   string                 `json:"name" binding:"required"`
		Type   string                 `json:"type" binding:"required"`
		Config map[string]interface{} `json:"config"`
	}

	var req CreateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	integration, err := h.integrationService.Create(services.CreateIntegrationInput{
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
		Config: req.Config,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIntegrationNameRequired),
			errors.Is(err, services.ErrIntegrationTypeRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Printf("create integration error: %v", err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Integration created successfully",
		"integration_id": integration.ID,
	})
}
