package batch

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/chapter-renamer/internal/model"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()
	assert.Empty(t, tracker.tasks)
}

func TestStart_CompletesAndReportsProgress(t *testing.T) {
	tracker := NewTracker()

	var mu sync.Mutex
	var statuses []model.TaskStatus
	tracker.SetUpdateCallback(func(task model.BatchTask) {
		mu.Lock()
		statuses = append(statuses, task.Status)
		mu.Unlock()
	})

	task, err := tracker.Start(model.TaskKindRename, "/books", 2, func(step Step) (model.BatchResult, error) {
		var r model.BatchResult
		r.Succeeded++
		step()
		r.Fail(model.RenameProposal{Original: "a", Proposed: "b"}, "destination exists")
		step()
		return r, nil
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(task.ID, "rename-"))
	assert.Equal(t, model.TaskStatusPending, task.Status)

	final, err := tracker.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, final.Status)
	assert.Equal(t, 2, final.Done)
	assert.Equal(t, 1.0, final.Progress())
	assert.Equal(t, 1, final.Result.Succeeded)
	require.Len(t, final.Result.Failures, 1)
	assert.False(t, final.FinishedAt.IsZero())

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, statuses)
	assert.Equal(t, model.TaskStatusRunning, statuses[0])
	assert.Equal(t, model.TaskStatusCompleted, statuses[len(statuses)-1])
}

func TestStart_JobError(t *testing.T) {
	tracker := NewTracker()
	boom := errors.New("no writers")

	task, err := tracker.Start(model.TaskKindTagSync, "/music", 3, func(Step) (model.BatchResult, error) {
		return model.BatchResult{}, boom
	})
	require.NoError(t, err)

	final, err := tracker.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusError, final.Status)
	assert.Equal(t, "no writers", final.LastError)
}

func TestStart_JobPanicBecomesError(t *testing.T) {
	tracker := NewTracker()

	task, err := tracker.Start(model.TaskKindRename, "/books", 1, func(Step) (model.BatchResult, error) {
		panic("unexpected")
	})
	require.NoError(t, err)

	final, err := tracker.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusError, final.Status)
	assert.Contains(t, final.LastError, "unexpected")
}

func TestStart_BusyFolder(t *testing.T) {
	tracker := NewTracker()
	release := make(chan struct{})

	first, err := tracker.Start(model.TaskKindRename, "/books", 1, func(Step) (model.BatchResult, error) {
		<-release
		return model.BatchResult{}, nil
	})
	require.NoError(t, err)

	_, err = tracker.Start(model.TaskKindTagSync, "/books", 1, func(Step) (model.BatchResult, error) {
		return model.BatchResult{}, nil
	})
	assert.ErrorIs(t, err, ErrBusy)
	assert.Contains(t, err.Error(), string(model.TaskKindRename))

	// the same folder spelled differently is still busy
	_, err = tracker.Start(model.TaskKindRename, "/books/", 1, func(Step) (model.BatchResult, error) {
		return model.BatchResult{}, nil
	})
	assert.ErrorIs(t, err, ErrBusy)

	other, err := tracker.Start(model.TaskKindRename, "/music", 0, func(Step) (model.BatchResult, error) {
		return model.BatchResult{}, nil
	})
	require.NoError(t, err, "other folders are not blocked")
	_, err = tracker.Wait(other.ID)
	require.NoError(t, err)

	close(release)
	_, err = tracker.Wait(first.ID)
	require.NoError(t, err)

	second, err := tracker.Start(model.TaskKindTagSync, "/books", 0, func(Step) (model.BatchResult, error) {
		return model.BatchResult{}, nil
	})
	require.NoError(t, err)
	_, err = tracker.Wait(second.ID)
	require.NoError(t, err)
}

func TestGetTaskAndWait_Unknown(t *testing.T) {
	tracker := NewTracker()

	_, ok := tracker.GetTask("missing")
	assert.False(t, ok)

	_, err := tracker.Wait("missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID(model.TaskKindRename)
	id2 := generateTaskID(model.TaskKindRename)

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, "rename-"))
	assert.True(t, strings.HasPrefix(id2, "rename-"))
	assert.True(t, strings.HasPrefix(generateTaskID(model.TaskKindTagSync), "tag-sync-"))
}
