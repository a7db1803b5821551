package tags

import "github.com/ytget/chapter-renamer/internal/model"

// Writer sets tag fields of one container format. An empty artist leaves
// the existing artist alone.
type Writer interface {
	Write(path, title, artist string) error
}

// Syncer defines the interface for the background tag service.
type Syncer interface {
	SetUpdateCallback(func(model.BatchTask))
	Candidates(names []string) []string
	Start(dir string, files []string, writeArtist bool) (model.BatchTask, error)
	GetTask(taskID string) (model.BatchTask, bool)
	Wait(taskID string) (model.BatchTask, error)
}
