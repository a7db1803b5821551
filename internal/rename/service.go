package rename

import (
	"github.com/ytget/chapter-renamer/internal/batch"
	"github.com/ytget/chapter-renamer/internal/model"
)

// TaskIDPrefix starts every rename batch ID.
var TaskIDPrefix = batch.IDPrefix(model.TaskKindRename)

// Service runs rename batches in the background
type Service struct {
	*batch.Tracker
}

// NewService creates a rename service on tracker. Pass the tracker of the
// tag service too so both refuse to start while the other runs in a folder.
func NewService(tracker *batch.Tracker) *Service {
	return &Service{Tracker: tracker}
}

// Start renames the changed pairs of proposals inside dir on a background
// goroutine. The returned task is a snapshot; later states arrive through
// the update callback.
func (s *Service) Start(dir string, proposals []model.RenameProposal) (model.BatchTask, error) {
	pending := model.Pending(proposals)
	return s.Tracker.Start(model.TaskKindRename, dir, len(pending), func(step batch.Step) (model.BatchResult, error) {
		return execute(dir, pending, step), nil
	})
}

var _ Renamer = (*Service)(nil)
