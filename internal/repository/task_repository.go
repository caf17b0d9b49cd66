package repository

import (
	"github.com/arialabs/aria-backend/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByUser returns the user's tasks, newest first
func (r *GormTaskRepository) ListByUser(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus sets the status of the task matching both id and owner and
// refreshes updated_at. A non-existent or foreign task matches zero rows,
// which is reported as success.
func (r *GormTaskRepository) UpdateStatus(userID, taskID uint64, status models.TaskStatus) error {
	return r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Update("status", status).Error
}

// Delete removes the task matching both id and owner. Matching zero rows is
// reported as success, so the operation is idempotent.
func (r *GormTaskRepository) Delete(userID, taskID uint64) error {
	return r.db.
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&models.Task{}).Error
}
