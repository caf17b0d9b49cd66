package repository

import (
	"testing"
	"time"

	"github.com/arialabs/aria-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskRepo(t *testing.T) (TaskRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewTaskRepository(db), db
}

func seedTask(t *testing.T, db *gorm.DB, userID uint64, title string, createdAt time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		UserID:    userID,
		Title:     title,
		Status:    models.TaskStatusPending,
		Priority:  models.TaskPriorityMedium,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestTaskRepository_ListByUser_ScopedAndOrdered(t *testing.T) {
	repo, db := setupTaskRepo(t)

	base := time.Now().Add(-time.Hour)
	seedTask(t, db, 1, "old", base)
	seedTask(t, db, 1, "new", base.Add(time.Minute))
	seedTask(t, db, 2, "other user", base.Add(2*time.Minute))

	tasks, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "new", tasks[0].Title)
	require.Equal(t, "old", tasks[1].Title)

	// A user with no rows gets an empty list, not an error.
	tasks, err = repo.ListByUser(99)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskRepository_UpdateStatus_OwnershipScoped(t *testing.T) {
	repo, db := setupTaskRepo(t)
	task := seedTask(t, db, 1, "mine", time.Now())

	// Wrong owner: zero rows matched, no error, row untouched.
	require.NoError(t, repo.UpdateStatus(2, task.ID, models.TaskStatusCompleted))

	var stored models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	require.Equal(t, models.TaskStatusPending, stored.Status)

	// Right owner: row updated.
	require.NoError(t, repo.UpdateStatus(1, task.ID, models.TaskStatusCompleted))
	require.NoError(t, db.First(&stored, task.ID).Error)
	require.Equal(t, models.TaskStatusCompleted, stored.Status)
}

func TestTaskRepository_Delete_OwnershipScopedAndIdempotent(t *testing.T) {
	repo, db := setupTaskRepo(t)
	task := seedTask(t, db, 1, "mine", time.Now())

	// Wrong owner deletes nothing.
	require.NoError(t, repo.Delete(2, task.ID))

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	// Right owner deletes the row; a second delete still succeeds.
	require.NoError(t, repo.Delete(1, task.ID))
	require.NoError(t, repo.Delete(1, task.ID))

	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}
