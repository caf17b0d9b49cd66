package services

import (
	"fmt"
	"time"

	"github.com/arialabs/aria-backend/internal/dto"
	"github.com/arialabs/aria-backend/internal/models"
	"github.com/arialabs/aria-backend/internal/repository"
)

// DashboardService combines the per-resource aggregates into the dashboard
// summary. It never writes.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// Stats runs the three aggregate queries for the user.
func (s *DashboardService) Stats(userID uint64) (*dto.DashboardStats, error) {
	taskCounts, err := s.dashboardRepo.TaskCountsByStatus(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	knowledgeCount, err := s.dashboardRepo.KnowledgeEntryCount(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count knowledge entries: %w", err)
	}

	integrationCount, err := s.dashboardRepo.ActiveIntegrationCount(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count integrations: %w", err)
	}

	var total int64
	for _, count := range taskCounts {
		total += count
	}

	return &dto.DashboardStats{
		TotalTasks:         total,
		PendingTasks:       taskCounts[models.TaskStatusPending],
		InProgressTasks:    taskCounts[models.TaskStatusInProgress],
		CompletedTasks:     taskCounts[models.TaskStatusCompleted],
		KnowledgeEntries:   knowledgeCount,
		ActiveIntegrations: integrationCount,
	}, nil
}

// RecentActivity returns the illustrative feed shown next to the stats. It
// has no persistence backing.
func (s *DashboardService) RecentActivity() []dto.ActivityItem {
	now := time.Now()
	return []dto.ActivityItem{
		{Type: "task", Message: "New task created", Timestamp: now},
		{Type: "ai", Message: "AI analysis completed", Timestamp: now},
		{Type: "integration", Message: "Integration synchronized", Timestamp: now},
	}
}
