package repository

import (
	"github.com/arialabs/aria-backend/internal/models"
	"gorm.io/gorm"
)

// GormIntegrationRepository is a GORM implementation of IntegrationRepository
type GormIntegrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository creates a new IntegrationRepository
func NewIntegrationRepository(db *gorm.DB) IntegrationRepository {
	return &GormIntegrationRepository{db: db}
}

// Create creates a new integration
func (r *GormIntegrationRepository) Create(integration *models.Integration) error {
	return r.db.Create(integration).Error
}

// ListByUser returns the user's integrations, newest first
func (r *GormIntegrationRepository) ListByUser(userID uint64) ([]models.Integration, error) {
	var integrations []models.Integration
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&integrations).Error
	if err != nil {
		return nil, err
	}
	return integrations, nil
}
