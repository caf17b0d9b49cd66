package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/arialabs/aria-backend/internal/models"
	"github.com/arialabs/aria-backend/internal/repository"
)

var (
	ErrIntegrationNameRequired = errors.New("name is required")
	ErrIntegrationTypeRequired = errors.New("type is required")
)

// IntegrationService handles integration business logic. Integrations are
// append-only in this revision.
type IntegrationService struct {
	integrationRepo repository.IntegrationRepository
}

// NewIntegrationService creates a new IntegrationService
func NewIntegrationService(integrationRepo repository.IntegrationRepository) *IntegrationService {
	return &IntegrationService{integrationRepo: integrationRepo}
}

// CreateIntegrationInput represents input for creating an integration
type CreateIntegrationInput struct {
	UserID uint64
	Name   string
	Type   string
	Config map[string]interface{}
}

// Create validates input and persists the integration. Config is serialized
// to JSON without being interpreted; a missing config stores as {}.
func (s *IntegrationService) Create(input CreateIntegrationInput) (*models.Integration, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrIntegrationNameRequired
	}
	if strings.TrimSpace(input.Type) == "" {
		return nil, ErrIntegrationTypeRequired
	}

	config := input.Config
	if config == nil {
		config = map[string]interface{}{}
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize integration config: %w", err)
	}

	integration := &models.Integration{
		UserID:   input.UserID,
		Name:     input.Name,
		Type:     input.Type,
		Config:   string(configJSON),
		IsActive: true,
	}

	if err := s.integrationRepo.Create(integration); err != nil {
		return nil, fmt.Errorf("failed to create integration: %w", err)
	}

	return integration, nil
}

// List returns the user's integrations.
func (s *IntegrationService) List(userID uint64) ([]models.Integration, error) {
	integrations, err := s.integrationRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}
	return integrations, nil
}
