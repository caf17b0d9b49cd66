package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arialabs/aria-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB opens gorm over a mocked connection so the aggregate SQL can be
// asserted without a live database.
func setupMockDB(t *testing.T) (DashboardRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewDashboardRepository(db), mock
}

func TestDashboardRepository_TaskCountsByStatus(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS count FROM `tasks` WHERE user_id = \\? GROUP BY `status`").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).
			AddRow("completed", 1))

	counts, err := repo.TaskCountsByStatus(42)
	require.NoError(t, err)
	require.Equal(t, int64(3), counts[models.TaskStatusPending])
	require.Equal(t, int64(1), counts[models.TaskStatusCompleted])
	require.NotContains(t, counts, models.TaskStatusInProgress)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_KnowledgeEntryCount(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `knowledge_entries` WHERE user_id = \\?").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	count, err := repo.KnowledgeEntryCount(42)
	require.NoError(t, err)
	require.Equal(t, int64(7), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ActiveIntegrationCount(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `integrations` WHERE user_id = \\? AND is_active = \\?").
		WithArgs(42, true).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	count, err := repo.ActiveIntegrationCount(42)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	require.NoError(t, mock.ExpectationsWereMet())
}
