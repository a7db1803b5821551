package tags

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/chapter-renamer/internal/batch"
	"github.com/ytget/chapter-renamer/internal/model"
	"github.com/ytget/chapter-renamer/internal/rename"
)

type call struct {
	path, title, artist string
}

type recordingWriter struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (w *recordingWriter) Write(path, title, artist string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, call{path, title, artist})
	return w.err
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "第0001集", TitleFor("第0001集.mp3"))
	assert.Equal(t, "a.b", TitleFor("a.b.flac"))
	assert.Equal(t, ".hidden", TitleFor(".hidden"))
}

func TestCandidates_CaseInsensitive(t *testing.T) {
	got := DefaultRegistry().Candidates([]string{"a.MP3", "b.Flac", "c.m4a", "d.wav", "cover.jpg"})
	assert.Equal(t, []string{"a.MP3", "b.Flac", "c.m4a"}, got)
}

func TestCandidates_DotfileHasNoExtension(t *testing.T) {
	got := DefaultRegistry().Candidates([]string{".mp3", "..flac", "第1集.mp3"})
	assert.Equal(t, []string{"第1集.mp3"}, got)

	mp3 := &recordingWriter{}
	result, err := Registry{ExtMP3: mp3}.Sync("/music", []string{".mp3"}, false)
	require.NoError(t, err)
	assert.Empty(t, mp3.calls)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "unsupported format", result.Failures[0].Reason)
}

func TestSync_WritesTitleAndArtist(t *testing.T) {
	mp3 := &recordingWriter{}
	reg := Registry{ExtMP3: mp3}

	result, err := reg.Sync("/music", []string{"第1集.mp3", "第2集.MP3"}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Empty(t, result.Failures)

	require.Len(t, mp3.calls, 2)
	assert.Equal(t, call{filepath.Join("/music", "第1集.mp3"), "第1集", "第1集"}, mp3.calls[0])
	assert.Equal(t, "第2集", mp3.calls[1].title)
}

func TestSync_WithoutArtist(t *testing.T) {
	mp3 := &recordingWriter{}

	_, err := Registry{ExtMP3: mp3}.Sync("/music", []string{"第1集.mp3"}, false)
	require.NoError(t, err)
	require.Len(t, mp3.calls, 1)
	assert.Equal(t, "", mp3.calls[0].artist)
}

func TestSync_PerFileFailures(t *testing.T) {
	ok := &recordingWriter{}
	denied := &recordingWriter{err: os.ErrPermission}
	reg := Registry{ExtMP3: ok, ExtFLAC: denied}

	result, err := reg.Sync("/music", []string{"a.flac", "b.wav", "c.mp3"}, true)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "a.flac → a (permission denied)", result.Failures[0].String())
	assert.Equal(t, "b.wav", result.Failures[1].Proposal.Original)
	assert.Equal(t, "unsupported format", result.Failures[1].Reason)
}

func TestSync_NoWriters(t *testing.T) {
	result, err := Registry{}.Sync("/music", []string{"a.mp3", "b.mp3"}, true)
	assert.ErrorIs(t, err, ErrNoTagWriter)
	assert.Equal(t, 0, result.Attempted())
}

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify(os.ErrPermission), ErrPermission)
	assert.ErrorIs(t, classify(errors.New("bad atom")), ErrCorruptContainer)
	assert.ErrorIs(t, classify(os.ErrNotExist), os.ErrNotExist)
	assert.Nil(t, classify(nil))
	assert.Equal(t, "file not found", Reason(classify(os.ErrNotExist)))
}

func TestService_Start(t *testing.T) {
	mp3 := &recordingWriter{}
	service := NewService(batch.NewTracker(), Registry{ExtMP3: mp3})

	task, err := service.Start("/music", []string{"第1集.mp3", "第2集.mp3"}, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(task.ID, TaskIDPrefix))
	assert.Equal(t, model.TaskKindTagSync, task.Kind)

	final, err := service.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, final.Status)
	assert.Equal(t, 2, final.Result.Succeeded)
	assert.Equal(t, 2, final.Done)
}

func TestService_StartWithoutWriters(t *testing.T) {
	service := NewService(batch.NewTracker(), Registry{})

	_, err := service.Start("/music", []string{"a.mp3"}, true)
	assert.ErrorIs(t, err, ErrNoTagWriter)
}

func TestService_Candidates(t *testing.T) {
	service := NewService(batch.NewTracker(), Registry{ExtFLAC: FLACWriter{}})
	assert.Equal(t, []string{"b.FLAC"}, service.Candidates([]string{"a.mp3", "b.FLAC"}))
}

func TestService_BusyWhileRenameRuns(t *testing.T) {
	dir := t.TempDir()
	tracker := batch.NewTracker()
	renamer := rename.NewService(tracker)
	service := NewService(tracker, Registry{ExtMP3: &recordingWriter{}})

	release := make(chan struct{})
	running, err := tracker.Start(model.TaskKindRename, dir, 1, func(batch.Step) (model.BatchResult, error) {
		<-release
		return model.BatchResult{}, nil
	})
	require.NoError(t, err)

	_, err = service.Start(dir, []string{"第1集.mp3"}, false)
	assert.ErrorIs(t, err, batch.ErrBusy)

	close(release)
	_, err = renamer.Wait(running.ID)
	require.NoError(t, err)

	task, err := service.Start(dir, []string{"第1集.mp3"}, false)
	require.NoError(t, err)
	_, err = service.Wait(task.ID)
	require.NoError(t, err)
}
