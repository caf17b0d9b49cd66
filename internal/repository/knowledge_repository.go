package repository

import (
	"github.com/arialabs/aria-backend/internal/models"
	"gorm.io/gorm"
)

// GormKnowledgeRepository is a GORM implementation of KnowledgeRepository
type GormKnowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a new KnowledgeRepository
func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &GormKnowledgeRepository{db: db}
}

// Create creates a new knowledge entry
func (r *GormKnowledgeRepository) Create(entry *models.KnowledgeEntry) error {
	return r.db.Create(entry).Error
}

// ListByUser returns the user's knowledge entries, newest first
func (r *GormKnowledgeRepository) ListByUser(userID uint64) ([]models.KnowledgeEntry, error) {
	var entries []models.KnowledgeEntry
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
