package report

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/chapter-renamer/internal/chapter"
	"github.com/ytget/chapter-renamer/internal/model"
)

func TestGaps(t *testing.T) {
	r, ok := chapter.DetectGaps([]string{"第0001集.mp3", "第0002集.mp3", "第0004集.mp3", "第6集.mp3"})
	require.True(t, ok)

	assert.Equal(t, "共缺失 2 集 (编号1-6)\n第3集\n第5集", Gaps(LangZH, r, ok))
	assert.Equal(t, "2 missing (numbers 1-6)\nNo. 3\nNo. 5", Gaps(LangEN, r, ok))
}

func TestGaps_ContiguousAndEmpty(t *testing.T) {
	r, ok := chapter.DetectGaps([]string{"第5集.mp3", "第0005集.mp3", "第6集.mp3"})
	assert.Equal(t, "编号从5到6，没有缺失", Gaps(LangZH, r, ok))

	r, ok = chapter.DetectGaps([]string{"a.mp3", "b.mp3"})
	assert.Equal(t, "没有找到带编号的文件", Gaps(LangZH, r, ok))
	assert.Equal(t, "No numbered files found", Gaps(LangEN, r, ok))
}

func TestGaps_UnknownLanguageFallsBack(t *testing.T) {
	r, ok := chapter.DetectGaps(nil)
	assert.Equal(t, "没有找到带编号的文件", Gaps("fr", r, ok))
}

func TestResult(t *testing.T) {
	var r model.BatchResult
	r.Succeeded = 1
	r.Fail(model.RenameProposal{Original: "b第2集.mp3", Proposed: "第2集.mp3"}, "destination exists")

	assert.Equal(t, "成功 1 / 失败 1\nb第2集.mp3 → 第2集.mp3 (destination exists)", Result(LangZH, r))
	assert.Equal(t, "Succeeded 1 / Failed 1", Summary(LangEN, r))
}

func TestPreview_AlignsWideRunes(t *testing.T) {
	out := Preview(LangZH, []model.RenameProposal{
		{Original: "我的第3章笔记.txt", Proposed: "第3章.txt"},
		{Original: "x第10章.txt", Proposed: "第10章.txt"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	col0 := runewidth.StringWidth(lines[0][:strings.Index(lines[0], "→")])
	col1 := runewidth.StringWidth(lines[1][:strings.Index(lines[1], "→")])
	assert.Equal(t, col0, col1)
	assert.True(t, strings.HasSuffix(lines[1], "第10章.txt"))
}

func TestPreview_Empty(t *testing.T) {
	assert.Equal(t, "没有需要重命名的文件", Preview(LangZH, nil))
	assert.Equal(t, "Nothing to rename", Preview(LangEN, nil))
}

func TestPrompts(t *testing.T) {
	assert.Equal(t, "将重命名 3 个文件，此操作无法撤销。继续吗？", ConfirmRename(LangZH, 3))
	assert.Equal(t, "Rename 3 files? This cannot be undone.", ConfirmRename(LangEN, 3))
	assert.Equal(t, "将修改 2 个音频文件的标题标签。继续吗？", ConfirmSyncTags(LangZH, 2))
	assert.Equal(t, "Rewrite the title tag of 2 audio files?", ConfirmSyncTags(LangEN, 2))
	assert.Equal(t, "没有找到 MP3/M4A/FLAC 文件", NoAudio(LangZH))
	assert.Equal(t, "No MP3/M4A/FLAC files found", NoAudio("fr"))
}
