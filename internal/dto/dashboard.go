package dto

import "time"

// DashboardStats is the aggregate rollup shown on the dashboard.
type DashboardStats struct {
	TotalTasks         int64 `json:"total_tasks"`
	PendingTasks       int64 `json:"pending_tasks"`
	InProgressTasks    int64 `json:"in_progress_tasks"`
	CompletedTasks     int64 `json:"completed_tasks"`
	KnowledgeEntries   int64 `json:"knowledge_entries"`
	ActiveIntegrations int64 `json:"active_integrations"`
}

// ActivityItem is one entry of the illustrative recent-activity feed.
type ActivityItem struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
