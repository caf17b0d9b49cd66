package repository

import (
	"github.com/arialabs/aria-backend/internal/models"
	"gorm.io/gorm"
)

// GormDashboardRepository is a GORM implementation of DashboardRepository.
// All three queries are read-only aggregates scoped to the owner.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &GormDashboardRepository{db: db}
}

// TaskCountsByStatus returns the user's task counts grouped by status
func (r *GormDashboardRepository) TaskCountsByStatus(userID uint64) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}

	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// KnowledgeEntryCount returns the user's total knowledge entry count
func (r *GormDashboardRepository) KnowledgeEntryCount(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.KnowledgeEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ActiveIntegrationCount returns the user's count of active integrations
func (r *GormDashboardRepository) ActiveIntegrationCount(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Integration{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}
