package chapter

import (
	"regexp"
	"strings"
)

// Marker literals
const (
	MarkerOpen = "第"

	SuffixChapter = "章"
	SuffixSection = "节"
	SuffixEpisode = "集"
)

// Numeral characters accepted by Extract besides ASCII digits: ideographic
// digits, the zero literal, and magnitudes up to ten thousand.
const IdeographicNumerals = "零一二三四五六七八九十百千万"

// PadWidth is the minimum digit count produced by Normalize.
const PadWidth = 4

const suffixClass = "[" + SuffixChapter + SuffixSection + SuffixEpisode + "]"

var (
	// reMarker matches any chapter marker, digits or ideographic numerals.
	// Go's \d is ASCII-only, which keeps other digit scripts out.
	reMarker = regexp.MustCompile(MarkerOpen + `[` + IdeographicNumerals + `\d]+` + suffixClass)

	// reDigitMarker captures prefix, digit run and suffix separately.
	reDigitMarker = regexp.MustCompile(`(` + MarkerOpen + `)(\d+)(` + suffixClass + `)`)
)

// SplitExt splits name into base and extension. The extension starts at the
// last dot; leading dots of a dotfile never start one, so ".profile" has no
// extension.
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndexAny(name, `/\.`)
	if i < 0 || name[i] != '.' {
		return name, ""
	}
	start := strings.LastIndexAny(name[:i], `/\`) + 1
	if strings.Trim(name[start:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}
