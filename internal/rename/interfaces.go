package rename

import (
	"github.com/ytget/chapter-renamer/internal/model"
)

// Renamer defines the interface for the background rename service.
type Renamer interface {
	SetUpdateCallback(func(model.BatchTask))
	Start(dir string, proposals []model.RenameProposal) (model.BatchTask, error)
	GetTask(taskID string) (model.BatchTask, bool)
	Wait(taskID string) (model.BatchTask, error)
}
