package services

import (
	"testing"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateDefaultsIncomplete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	alice := newTestUser(t, db, "alice")

	task, err := svc.Create(alice, nil, &dtos.TaskRequest{Content: "write cover letter"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskIncomplete, task.Status)
	assert.Nil(t, task.CompanyID)
}

func TestTaskCreateRejectsEmptyContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	alice := newTestUser(t, db, "alice")

	_, err := svc.Create(alice, nil, &dtos.TaskRequest{Content: ""})
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTaskToggleDoubleToggleRoundTrips(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	alice := newTestUser(t, db, "alice")

	task, err := svc.Create(alice, nil, &dtos.TaskRequest{Content: "follow up"})
	require.NoError(t, err)

	toggled, err := svc.Toggle(alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskComplete, toggled.Status)

	toggled, err = svc.Toggle(alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskIncomplete, toggled.Status)
}

func TestTaskToggleNormalizesUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	alice := newTestUser(t, db, "alice")

	task, err := svc.Create(alice, nil, &dtos.TaskRequest{Content: "odd one"})
	require.NoError(t, err)
	require.NoError(t, db.Model(task).Update("status", "garbage").Error)

	toggled, err := svc.Toggle(alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskIncomplete, toggled.Status)
}

func TestTaskCrossUserDenied(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	task, err := svc.Create(alice, nil, &dtos.TaskRequest{Content: "mine"})
	require.NoError(t, err)

	_, err = svc.Toggle(bob, task.ID)
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	_, err = svc.Update(bob, task.ID, &dtos.TaskRequest{Content: "stolen"})
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	err = svc.Delete(bob, task.ID)
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)

	// Untouched.
	var stored models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.Equal(t, "mine", stored.Content)
	assert.Equal(t, models.TaskIncomplete, stored.Status)
}

func TestTaskListOrderedByDeadline(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	alice := newTestUser(t, db, "alice")

	_, err := svc.Create(alice, nil, &dtos.TaskRequest{Content: "b", Deadline: "2025-06-01"})
	require.NoError(t, err)
	_, err = svc.Create(alice, nil, &dtos.TaskRequest{Content: "a", Deadline: "2025-01-01"})
	require.NoError(t, err)

	tasks, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Content)
}
