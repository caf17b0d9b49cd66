package repository

import (
	"github.com/arialabs/aria-backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsernameOrEmail finds a user whose username or email matches identifier
	FindByUsernameOrEmail(identifier string) (*models.User, error)

	// ExistsByUsernameOrEmail reports whether a user with the given username or email exists
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}

// TaskRepository defines the interface for task data access. Every method is
// scoped to the owning user; rows belonging to other users are never touched.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByUser returns the user's tasks, newest first
	ListByUser(userID uint64) ([]models.Task, error)

	// UpdateStatus sets the status of the task matching both id and owner.
	// Matching zero rows is not an error.
	UpdateStatus(userID, taskID uint64, status models.TaskStatus) error

	// Delete removes the task matching both id and owner. Matching zero rows
	// is not an error, so repeated deletes are idempotent.
	Delete(userID, taskID uint64) error
}

// KnowledgeRepository defines the interface for knowledge base data access
type KnowledgeRepository interface {
	// Create creates a new knowledge entry
	Create(entry *models.KnowledgeEntry) error

	// ListByUser returns the user's knowledge entries, newest first
	ListByUser(userID uint64) ([]models.KnowledgeEntry, error)
}

// IntegrationRepository defines the interface for integration data access
type IntegrationRepository interface {
	// Create creates a new integration
	Create(integration *models.Integration) error

	// ListByUser returns the user's integrations
	ListByUser(userID uint64) ([]models.Integration, error)
}

// DashboardRepository exposes the read-only aggregates backing the dashboard
type DashboardRepository interface {
	// TaskCountsByStatus returns the user's task counts grouped by status
	TaskCountsByStatus(userID uint64) (map[models.TaskStatus]int64, error)

	// KnowledgeEntryCount returns the user's total knowledge entry count
	KnowledgeEntryCount(userID uint64) (int64, error)

	// ActiveIntegrationCount returns the user's count of active integrations
	ActiveIntegrationCount(userID uint64) (int64, error)
}
