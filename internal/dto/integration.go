package dto

import (
	"time"

	"github.com/arialabs/aria-backend/internal/models"
)

// IntegrationDTO represents an integration in API responses. The stored
// config document is intentionally omitted from listings.
type IntegrationDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToIntegrationDTO converts an Integration model to IntegrationDTO
func ToIntegrationDTO(integration models.Integration) IntegrationDTO {
	return IntegrationDTO{
		ID:        integration.ID,
		Name:      integration.Name,
		Type:      integration.Type,
		IsActive:  integration.IsActive,
		CreatedAt: integration.CreatedAt,
	}
}

// ToIntegrationDTOs converts a slice of Integration models
func ToIntegrationDTOs(integrations []models.Integration) []IntegrationDTO {
	dtos := make([]IntegrationDTO, len(integrations))
	for i, integration := range integrations {
		dtos[i] = ToIntegrationDTO(integration)
	}
	return dtos
}
