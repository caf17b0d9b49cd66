package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arialabs/aria-backend/internal/models"
	"github.com/arialabs/aria-backend/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	UserID      uint64
	Title       string
	Description string
	Priority    models.TaskPriority
}

// Create validates input, applies defaults and persists the task.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		UserID:      input.UserID,
		Title:       title,
		Description: input.Description,
		Status:      models.TaskStatusPending,
		Priority:    priority,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns the user's tasks, newest first.
func (s *TaskService) List(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus sets the status of the user's task. Targeting a task that
// doesn't exist or belongs to someone else updates nothing and still
// succeeds.
func (s *TaskService) UpdateStatus(userID, taskID uint64, status models.TaskStatus) error {
	if !models.ValidTaskStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.taskRepo.UpdateStatus(userID, taskID, status); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes the user's task. Deleting an already-absent task succeeds.
func (s *TaskService) Delete(userID, taskID uint64) error {
	if err := s.taskRepo.Delete(userID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
