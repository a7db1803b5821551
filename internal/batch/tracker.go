// Package batch runs destructive batches (renames, tag writes) on a
// background goroutine and reports their state to a single update callback.
// Services that share one Tracker share its per-folder busy guard.
package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ytget/chapter-renamer/internal/model"
)

// ErrBusy is returned when a batch is already running in the same folder.
var ErrBusy = errors.New("batch already in progress for folder")

// ErrTaskNotFound is returned by Wait for unknown IDs.
var ErrTaskNotFound = errors.New("batch task not found")

// Step reports that one more item was attempted.
type Step func()

// Job is the work of one batch. It returns the per-item outcome, or an error
// when the whole batch could not run.
type Job func(step Step) (model.BatchResult, error)

// Tracker owns the batch tasks started through it. At most one unfinished
// task per folder exists at a time, whatever its kind.
type Tracker struct {
	tasks      map[string]*model.BatchTask
	done       map[string]chan struct{}
	tasksMutex sync.RWMutex
	onUpdate   func(model.BatchTask)
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		tasks: make(map[string]*model.BatchTask),
		done:  make(map[string]chan struct{}),
	}
}

// SetUpdateCallback sets the function receiving task snapshots. It is called
// from the batch goroutine.
func (t *Tracker) SetUpdateCallback(callback func(model.BatchTask)) {
	t.tasksMutex.Lock()
	t.onUpdate = callback
	t.tasksMutex.Unlock()
}

// Start registers a task and runs job in the background. It fails with
// ErrBusy while another task of any kind is unfinished in dir.
func (t *Tracker) Start(kind model.TaskKind, dir string, total int, job Job) (model.BatchTask, error) {
	dir = filepath.Clean(dir)

	t.tasksMutex.Lock()
	for _, task := range t.tasks {
		if task.Dir == dir && !task.Status.IsFinished() {
			t.tasksMutex.Unlock()
			return model.BatchTask{}, fmt.Errorf("%w: %s (%s running)", ErrBusy, dir, task.Kind)
		}
	}

	task := &model.BatchTask{
		ID:        generateTaskID(kind),
		Kind:      kind,
		Dir:       dir,
		Status:    model.TaskStatusPending,
		Total:     total,
		StartedAt: time.Now(),
	}
	t.tasks[task.ID] = task
	t.done[task.ID] = make(chan struct{})
	snapshot := *task
	t.tasksMutex.Unlock()

	go t.run(task, job)

	return snapshot, nil
}

// GetTask returns a snapshot of the task with the given ID.
func (t *Tracker) GetTask(taskID string) (model.BatchTask, bool) {
	t.tasksMutex.RLock()
	defer t.tasksMutex.RUnlock()
	task, exists := t.tasks[taskID]
	if !exists {
		return model.BatchTask{}, false
	}
	return *task, true
}

// Wait blocks until the task finishes and returns its final snapshot.
func (t *Tracker) Wait(taskID string) (model.BatchTask, error) {
	t.tasksMutex.RLock()
	ch, exists := t.done[taskID]
	t.tasksMutex.RUnlock()
	if !exists {
		return model.BatchTask{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	<-ch
	task, _ := t.GetTask(taskID)
	return task, nil
}

func (t *Tracker) run(task *model.BatchTask, job Job) {
	t.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	t.tasksMutex.Unlock()
	t.notifyUpdate(task)

	step := func() {
		t.tasksMutex.Lock()
		task.Done++
		t.tasksMutex.Unlock()
		t.notifyUpdate(task)
	}

	result, err := t.safeRun(job, step)

	t.tasksMutex.Lock()
	task.Result = result
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
	}
	task.FinishedAt = time.Now()
	ch := t.done[task.ID]
	t.tasksMutex.Unlock()

	log.Info().
		Str("task", task.ID).
		Str("kind", string(task.Kind)).
		Int("succeeded", result.Succeeded).
		Int("failed", len(result.Failures)).
		Err(err).
		Msg("Batch finished")

	t.notifyUpdate(task)
	close(ch)
}

// safeRun keeps a panicking job from taking the process down; the batch
// ends in the error state instead.
func (t *Tracker) safeRun(job Job, step Step) (result model.BatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("batch panicked: %v", r)
		}
	}()
	return job(step)
}

// notifyUpdate passes a snapshot of task to the update callback if set
func (t *Tracker) notifyUpdate(task *model.BatchTask) {
	t.tasksMutex.RLock()
	callback := t.onUpdate
	snapshot := *task
	t.tasksMutex.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}

// IDPrefix returns the prefix of every task ID of kind.
func IDPrefix(kind model.TaskKind) string {
	return string(kind) + "-"
}

// generateTaskID returns a time-ordered UUID v7 prefixed with the kind
func generateTaskID(kind model.TaskKind) string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s%d", IDPrefix(kind), time.Now().UnixNano())
	}
	return IDPrefix(kind) + id.String()
}
