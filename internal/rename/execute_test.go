package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/chapter-renamer/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestExecute_DestinationExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a第1集.mp3", "one")
	writeFile(t, dir, "b第2集.mp3", "two")
	writeFile(t, dir, "第2集.mp3", "taken")

	result := Execute(dir, []model.RenameProposal{
		{Original: "a第1集.mp3", Proposed: "第1集.mp3"},
		{Original: "b第2集.mp3", Proposed: "第2集.mp3"},
	})

	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "b第2集.mp3", result.Failures[0].Proposal.Original)
	assert.Equal(t, ReasonDestinationExists, result.Failures[0].Reason)

	assert.Equal(t, "one", readFile(t, dir, "第1集.mp3"))
	assert.Equal(t, "taken", readFile(t, dir, "第2集.mp3"))
	assert.Equal(t, "two", readFile(t, dir, "b第2集.mp3"))
	assert.NoFileExists(t, filepath.Join(dir, "a第1集.mp3"))
}

func TestExecute_CollisionInsideBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "上第3章.txt", "first")
	writeFile(t, dir, "下第3章.txt", "second")

	result := Execute(dir, Plan([]string{"上第3章.txt", "下第3章.txt"}, ModeExtract))

	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, ReasonDestinationExists, result.Failures[0].Reason)
	assert.Equal(t, "first", readFile(t, dir, "第3章.txt"))
}

func TestExecute_DropsUnchangedPairs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "第0001集.mp3", "x")

	result := Execute(dir, []model.RenameProposal{
		{Original: "第0001集.mp3", Proposed: "第0001集.mp3"},
	})

	assert.Equal(t, 0, result.Attempted())
	assert.FileExists(t, filepath.Join(dir, "第0001集.mp3"))
}

func TestExecute_PerItemFailuresDoNotAbort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "第7集.mp3", "x")

	result := Execute(dir, []model.RenameProposal{
		{Original: "gone第1集.mp3", Proposed: "第1集.mp3"},
		{Original: "第5集.mp3", Proposed: "../第5集.mp3"},
		{Original: "第7集.mp3", Proposed: "第0007集.mp3"},
	})

	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, ReasonSourceMissing, result.Failures[0].Reason)
	assert.Equal(t, ReasonInvalidName, result.Failures[1].Reason)
	assert.FileExists(t, filepath.Join(dir, "第0007集.mp3"))
}

func TestValidName(t *testing.T) {
	assert.True(t, validName("第1集.mp3"))
	assert.True(t, validName(".hidden"))
	assert.False(t, validName(""))
	assert.False(t, validName(".."))
	assert.False(t, validName("a/b"))
	assert.False(t, validName(`a\b`))
}
