package model

// TaskStatus represents the status of a background batch task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means the batch is being applied
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusCompleted means every item was attempted
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the batch could not run at all
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusRunning
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// TaskKind names the destructive operation a batch task performs
type TaskKind string

const (
	TaskKindRename  TaskKind = "rename"
	TaskKindTagSync TaskKind = "tag-sync"
)
