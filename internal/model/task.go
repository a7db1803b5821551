package model

import (
	"path/filepath"
	"time"
)

// BatchTask represents one destructive batch (rename or tag sync) running
// in the background.
type BatchTask struct {
	ID         string
	Kind       TaskKind
	Dir        string // folder the batch operates in
	Status     TaskStatus
	Total      int // items to attempt
	Done       int // items attempted so far
	Result     BatchResult
	LastError  string // whole-batch error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Progress returns the attempted fraction in [0, 1].
func (bt *BatchTask) Progress() float64 {
	if bt.Total <= 0 {
		if bt.Status == TaskStatusCompleted {
			return 1
		}
		return 0
	}
	p := float64(bt.Done) / float64(bt.Total)
	if p > 1 {
		p = 1
	}
	return p
}

// GetDisplayTitle returns the folder name the batch works on, or the kind
// when no folder is set.
func (bt *BatchTask) GetDisplayTitle() string {
	if bt.Dir == "" {
		return string(bt.Kind)
	}
	return filepath.Base(bt.Dir)
}

// Elapsed returns how long the batch ran, or has been running so far.
func (bt *BatchTask) Elapsed() time.Duration {
	if bt.StartedAt.IsZero() {
		return 0
	}
	if bt.FinishedAt.IsZero() {
		return time.Since(bt.StartedAt)
	}
	return bt.FinishedAt.Sub(bt.StartedAt)
}
