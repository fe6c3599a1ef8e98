package task_test

import (
	"testing"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"
	"installation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "bring ladder", time.Now())
	require.NoError(t, err)
	return tk
}

func advance(t *testing.T, tk *task.Task, steps ...task.Status) {
	t.Helper()
	for _, s := range steps {
		require.NoError(t, tk.ChangeStatus(s, "", time.Now()))
	}
}

func TestNewTask(t *testing.T) {
	t.Run("should start Assigned", func(t *testing.T) {
		tk := newTask(t)

		require.NoError(t, tk.Validate())
		assert.Equal(t, task.Assigned, tk.Status())
		assert.Equal(t, "bring ladder", tk.Notes())
		assert.True(t, tk.IsActive())
		assert.Nil(t, tk.HeldFrom())
		assert.Nil(t, tk.UpdatedAt())
	})

	t.Run("should require ids", func(t *testing.T) {
		_, err := task.NewTask(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreTask(t *testing.T) {
	held := task.Enroute

	t.Run("should keep held-from on OnHold", func(t *testing.T) {
		tk, err := task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			task.OnHold, "", &held, time.Now(), nil)

		require.NoError(t, err)
		require.NotNil(t, tk.HeldFrom())
		assert.Equal(t, task.Enroute, *tk.HeldFrom())
	})

	t.Run("should reject held-from outside OnHold", func(t *testing.T) {
		_, err := task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			task.Onsite, "", &held, time.Now(), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			task.Status(42), "", nil, time.Now(), nil)

		assert.Error(t, err)
	})
}

func TestTask_ChangeStatus(t *testing.T) {
	t.Run("should walk the full lifecycle", func(t *testing.T) {
		tk := newTask(t)

		advance(t, tk, task.Accepted, task.Enroute, task.Onsite, task.InProgress)
		require.NoError(t, tk.ChangeStatus(task.Completed, "done", time.Now()))

		assert.Equal(t, task.Completed, tk.Status())
		assert.Equal(t, "done", tk.Notes())
		assert.False(t, tk.IsActive())
		assert.NotNil(t, tk.UpdatedAt())
	})

	t.Run("should keep earlier notes when a step carries none", func(t *testing.T) {
		tk := newTask(t)

		require.NoError(t, tk.ChangeStatus(task.Accepted, "", time.Now()))
		assert.Equal(t, "bring ladder", tk.Notes())

		require.NoError(t, tk.ChangeStatus(task.Enroute, "stuck in traffic", time.Now()))
		assert.Equal(t, "stuck in traffic", tk.Notes())
	})

	t.Run("should reject a skipped step and keep state", func(t *testing.T) {
		tk := newTask(t)

		err := tk.ChangeStatus(task.Completed, "", time.Now())

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, task.Assigned, tk.Status())
		assert.Nil(t, tk.UpdatedAt())
	})

	t.Run("should resume OnHold to the held-from state only", func(t *testing.T) {
		tk := newTask(t)
		advance(t, tk, task.Accepted, task.Enroute, task.OnHold)
		require.NotNil(t, tk.HeldFrom())
		assert.Equal(t, task.Enroute, *tk.HeldFrom())

		assert.ErrorIs(t, tk.ChangeStatus(task.Onsite, "", time.Now()), errs.ErrInvalidTransition)
		require.NoError(t, tk.ChangeStatus(task.Enroute, "", time.Now()))

		assert.Equal(t, task.Enroute, tk.Status())
		assert.Nil(t, tk.HeldFrom())
	})

	t.Run("should return from OnHold", func(t *testing.T) {
		tk := newTask(t)
		advance(t, tk, task.OnHold, task.Returned)

		assert.Equal(t, task.Returned, tk.Status())
		assert.Nil(t, tk.HeldFrom())
		assert.ErrorIs(t, tk.ChangeStatus(task.Accepted, "", time.Now()), errs.ErrInvalidTransition)
	})
}

func TestTask_Clone(t *testing.T) {
	tk := newTask(t)
	advance(t, tk, task.OnHold)

	c := tk.Clone()
	require.NoError(t, c.ChangeStatus(task.Assigned, "", time.Now()))

	assert.Equal(t, task.OnHold, tk.Status())
	assert.NotNil(t, tk.HeldFrom())
	assert.Equal(t, task.Assigned, c.Status())
}

func TestTask_IsAssignedTo(t *testing.T) {
	tech := kernel.NewUUID()
	tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), tech, "", time.Now())
	require.NoError(t, err)

	assert.True(t, tk.IsAssignedTo(tech))
	assert.False(t, tk.IsAssignedTo(kernel.NewUUID()))
}
