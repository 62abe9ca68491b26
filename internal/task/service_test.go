package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmafra/gestor/internal/kv"
	"github.com/dmafra/gestor/internal/task"
)

func TestToggleKeepsCategoryInLockstep(t *testing.T) {
	svc := task.NewService(kv.NewMemory())

	created := svc.Create(task.CreateParams{Title: "Enviar proposta"})
	assert.False(t, created.Completed)
	assert.Equal(t, task.CategoryPending, created.Category)

	toggled, ok := svc.Toggle(created.ID)
	require.True(t, ok)
	assert.True(t, toggled.Completed)
	assert.Equal(t, task.CategoryCompleted, toggled.Category)

	toggled, ok = svc.Toggle(created.ID)
	require.True(t, ok)
	assert.False(t, toggled.Completed)
	assert.Equal(t, task.CategoryPending, toggled.Category)
}

func TestToggleCollapsesInProgressToPending(t *testing.T) {
	svc := task.NewService(kv.NewMemory())

	created := svc.Create(task.CreateParams{Title: "Revisar contrato", Category: task.CategoryInProgress})

	toggled, ok := svc.Toggle(created.ID)
	require.True(t, ok)
	assert.Equal(t, task.CategoryCompleted, toggled.Category)

	// Toggling back does not restore inProgress.
	toggled, ok = svc.Toggle(created.ID)
	require.True(t, ok)
	assert.Equal(t, task.CategoryPending, toggled.Category)
}

func TestEditSetsCategoryIndependently(t *testing.T) {
	svc := task.NewService(kv.NewMemory())

	created := svc.Create(task.CreateParams{Title: "Deploy"})

	done, ok := svc.Toggle(created.ID)
	require.True(t, ok)
	require.True(t, done.Completed)

	// The edit path may produce states the toggle never yields.
	inProgress := task.CategoryInProgress

	edited, ok := svc.Update(created.ID, task.UpdateParams{Category: &inProgress})
	require.True(t, ok)
	assert.True(t, edited.Completed)
	assert.Equal(t, task.CategoryInProgress, edited.Category)
}

func TestCreateDefaults(t *testing.T) {
	svc := task.NewService(kv.NewMemory())

	created := svc.Create(task.CreateParams{Title: "Sem prioridade"})

	assert.Equal(t, task.PriorityMedium, created.Priority)
	assert.Equal(t, task.CategoryPending, created.Category)
}

func TestListByCategory(t *testing.T) {
	store := kv.NewMemory()
	svc := task.NewService(store)

	// Defaults hold the placeholder pending task with id 1.
	a := svc.Create(task.CreateParams{Title: "a", Category: task.CategoryInProgress})
	svc.Create(task.CreateParams{Title: "b"})

	inProgress := svc.ListByCategory(task.CategoryInProgress)
	require.Len(t, inProgress, 1)
	assert.Equal(t, a.ID, inProgress[0].ID)

	pending := svc.ListByCategory(task.CategoryPending)
	assert.Len(t, pending, 2)
}

func TestToggleMissingTask(t *testing.T) {
	svc := task.NewService(kv.NewMemory())

	_, ok := svc.Toggle(42)
	assert.False(t, ok)
}
