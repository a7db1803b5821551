package tags

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ytget/chapter-renamer/internal/batch"
	"github.com/ytget/chapter-renamer/internal/chapter"
	"github.com/ytget/chapter-renamer/internal/model"
	"github.com/ytget/chapter-renamer/internal/platform"
)

// TaskIDPrefix starts every tag batch ID.
var TaskIDPrefix = batch.IDPrefix(model.TaskKindTagSync)

// Supported extensions
const (
	ExtMP3  = ".mp3"
	ExtM4A  = ".m4a"
	ExtFLAC = ".flac"
)

// Registry maps lowercase extensions to writers.
type Registry map[string]Writer

// DefaultRegistry returns the writers for every supported container.
func DefaultRegistry() Registry {
	return Registry{
		ExtMP3:  ID3Writer{},
		ExtM4A:  MP4Writer{},
		ExtFLAC: FLACWriter{},
	}
}

// Extensions returns the set of extensions r can write.
func (r Registry) Extensions() map[string]bool {
	exts := make(map[string]bool, len(r))
	for ext := range r {
		exts[ext] = true
	}
	return exts
}

// writerFor returns the writer registered for name's extension.
func (r Registry) writerFor(name string) (Writer, bool) {
	_, ext := chapter.SplitExt(name)
	w, ok := r[strings.ToLower(ext)]
	return w, ok
}

// Candidates returns the files of names that r has a writer for.
func (r Registry) Candidates(names []string) []string {
	return platform.FilterByExtension(names, r.Extensions())
}

// TitleFor returns the tag title for a file name: the name without its extension.
func TitleFor(name string) string {
	base, _ := chapter.SplitExt(name)
	return base
}

// Sync writes the title (and artist when writeArtist is set) of every file
// in files that lives in dir. Each file is independent; the error is
// non-nil only when r has no writers at all.
func (r Registry) Sync(dir string, files []string, writeArtist bool) (model.BatchResult, error) {
	return r.sync(dir, files, writeArtist, func() {})
}

func (r Registry) sync(dir string, files []string, writeArtist bool, step func()) (model.BatchResult, error) {
	var result model.BatchResult
	if len(r) == 0 {
		return result, ErrNoTagWriter
	}

	for _, name := range files {
		title := TitleFor(name)
		p := model.RenameProposal{Original: name, Proposed: title}

		w, ok := r.writerFor(name)
		if !ok {
			result.Fail(p, Reason(ErrUnsupportedFormat))
			step()
			continue
		}

		artist := ""
		if writeArtist {
			artist = title
		}

		if err := w.Write(filepath.Join(dir, name), title, artist); err != nil {
			log.Warn().
				Str("file", name).
				Err(err).
				Msg("Tag write failed")
			result.Fail(p, Reason(err))
		} else {
			log.Debug().
				Str("file", name).
				Str("title", title).
				Msg("Tags written")
			result.Succeeded++
		}
		step()
	}
	return result, nil
}

// Service runs tag batches in the background
type Service struct {
	*batch.Tracker
	registry Registry
}

// NewService creates a tag service over registry that runs its batches on tracker
func NewService(tracker *batch.Tracker, registry Registry) *Service {
	return &Service{
		Tracker:  tracker,
		registry: registry,
	}
}

// Candidates returns the files of names the service can tag.
func (s *Service) Candidates(names []string) []string {
	return s.registry.Candidates(names)
}

// Start syncs the tags of files inside dir on a background goroutine.
func (s *Service) Start(dir string, files []string, writeArtist bool) (model.BatchTask, error) {
	if len(s.registry) == 0 {
		return model.BatchTask{}, fmt.Errorf("cannot sync tags in %s: %w", dir, ErrNoTagWriter)
	}
	return s.Tracker.Start(model.TaskKindTagSync, dir, len(files), func(step batch.Step) (model.BatchResult, error) {
		return s.registry.sync(dir, files, writeArtist, step)
	})
}

var _ Syncer = (*Service)(nil)
