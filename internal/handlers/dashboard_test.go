package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashboard_EmptyUser(t *testing.T) {
	api := setupTestAPI(t)
	token := api.registerUser(t, "alice", "alice@x.com", "pw123")

	w := api.request(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	stats := body["stats"].(map[string]interface{})
	require.Equal(t, float64(0), stats["total_tasks"])
	require.Equal(t, float64(0), stats["pending_tasks"])
	require.Equal(t, float64(0), stats["completed_tasks"])
	require.Equal(t, float64(0), stats["knowledge_entries"])
	require.Equal(t, float64(0), stats["active_integrations"])

	activity := body["recent_activity"].([]interface{})
	require.Len(t, activity, 3)
	first := activity[0].(map[string]interface{})
	require.NotEmpty(t, first["type"])
	require.NotEmpty(t, first["message"])
	require.NotEmpty(t, first["timestamp"])
}

func TestDashboard_CountsAfterActivity(t *testing.T) {
	api := setupTestAPI(t)
	token := api.registerUser(t, "alice", "alice@x.com", "pw123")

	// One task completed, one left pending.
	w := api.request(t, http.MethodPost, "/api/tasks", token, map[string]string{"title": "Buy milk"})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := uint64(decodeBody(t, w)["task_id"].(float64))

	w = api.request(t, http.MethodPost, "/api/tasks", token, map[string]string{"title": "Walk dog"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.request(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskID), token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.request(t, http.MethodPost, "/api/knowledge", token, map[string]interface{}{
		"title":   "note",
		"content": "text",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.request(t, http.MethodPost, "/api/integrations", token, map[string]interface{}{
		"name": "Slack",
		"type": "slack",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.request(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decodeBody(t, w)["stats"].(map[string]interface{})
	require.Equal(t, float64(2), stats["total_tasks"])
	require.Equal(t, float64(1), stats["pending_tasks"])
	require.Equal(t, float64(1), stats["completed_tasks"])
	require.Equal(t, float64(0), stats["in_progress_tasks"])
	require.Equal(t, float64(1), stats["knowledge_entries"])
	require.Equal(t, float64(1), stats["active_integrations"])
}

func TestDashboard_ScopedToOwner(t *testing.T) {
	api := setupTestAPI(t)
	aliceToken := api.registerUser(t, "alice", "alice@x.com", "pw123")
	bobToken := api.registerUser(t, "bob", "bob@x.com", "pw456")

	w := api.request(t, http.MethodPost, "/api/tasks", aliceToken, map[string]string{"title": "alice's task"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.request(t, http.MethodGet, "/api/dashboard", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decodeBody(t, w)["stats"].(map[string]interface{})
	require.Equal(t, float64(0), stats["total_tasks"])
}
