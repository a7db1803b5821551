// Package report renders gap reports, batch results and rename previews as
// text for the dialogs and the command line.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ytget/chapter-renamer/internal/chapter"
	"github.com/ytget/chapter-renamer/internal/model"
)

// Languages
const (
	LangZH = "zh"
	LangEN = "en"
)

type templates struct {
	noNumbered string
	contiguous string // min, max
	missing    string // count, min, max
	missingRow string // number
	summary    string // succeeded, failed
	empty      string

	confirmRename string // count
	confirmTags   string // count
	noAudio       string
}

var byLang = map[string]templates{
	LangZH: {
		noNumbered: "没有找到带编号的文件",
		contiguous: "编号从%d到%d，没有缺失",
		missing:    "共缺失 %d 集 (编号%d-%d)",
		missingRow: "第%d集",
		summary:    "成功 %d / 失败 %d",
		empty:      "没有需要重命名的文件",

		confirmRename: "将重命名 %d 个文件，此操作无法撤销。继续吗？",
		confirmTags:   "将修改 %d 个音频文件的标题标签。继续吗？",
		noAudio:       "没有找到 MP3/M4A/FLAC 文件",
	},
	LangEN: {
		noNumbered: "No numbered files found",
		contiguous: "Numbers %d to %d, nothing missing",
		missing:    "%d missing (numbers %d-%d)",
		missingRow: "No. %d",
		summary:    "Succeeded %d / Failed %d",
		empty:      "Nothing to rename",

		confirmRename: "Rename %d files? This cannot be undone.",
		confirmTags:   "Rewrite the title tag of %d audio files?",
		noAudio:       "No MP3/M4A/FLAC files found",
	},
}

func lookup(lang string) templates {
	if t, ok := byLang[lang]; ok {
		return t
	}
	return byLang[LangZH]
}

// ConfirmRename asks whether count files may be renamed.
func ConfirmRename(lang string, count int) string {
	return fmt.Sprintf(lookup(lang).confirmRename, count)
}

// ConfirmSyncTags asks whether the tags of count files may be rewritten.
func ConfirmSyncTags(lang string, count int) string {
	return fmt.Sprintf(lookup(lang).confirmTags, count)
}

// NoAudio says that a folder holds nothing to tag.
func NoAudio(lang string) string {
	return lookup(lang).noAudio
}

// Gaps renders the result of chapter.DetectGaps.
func Gaps(lang string, r chapter.GapReport, ok bool) string {
	t := lookup(lang)
	if !ok {
		return t.noNumbered
	}
	if r.Contiguous() {
		return fmt.Sprintf(t.contiguous, r.Min, r.Max)
	}

	var b strings.Builder
	fmt.Fprintf(&b, t.missing, len(r.Missing), r.Min, r.Max)
	for _, n := range r.Missing {
		b.WriteByte('\n')
		fmt.Fprintf(&b, t.missingRow, n)
	}
	return b.String()
}

// Summary renders the success and failure counts of a batch.
func Summary(lang string, r model.BatchResult) string {
	return fmt.Sprintf(lookup(lang).summary, r.Succeeded, len(r.Failures))
}

// Result renders the summary followed by one line per failure.
func Result(lang string, r model.BatchResult) string {
	lines := []string{Summary(lang, r)}
	for _, f := range r.Failures {
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}

// Preview renders proposals as two aligned columns. CJK characters count
// as two cells so the arrows line up in a terminal.
func Preview(lang string, proposals []model.RenameProposal) string {
	if len(proposals) == 0 {
		return lookup(lang).empty
	}

	width := 0
	for _, p := range proposals {
		width = max(width, runewidth.StringWidth(p.Original))
	}

	var b strings.Builder
	for i, p := range proposals {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(runewidth.FillRight(p.Original, width))
		b.WriteString("  →  ")
		b.WriteString(p.Proposed)
	}
	return b.String()
}
