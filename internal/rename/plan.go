package rename

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ytget/chapter-renamer/internal/chapter"
	"github.com/ytget/chapter-renamer/internal/model"
)

// Mode selects the rule that produces proposed names.
type Mode string

const (
	ModeExtract   Mode = "extract"
	ModeNormalize Mode = "normalize"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeExtract, ModeNormalize}

// ParseMode accepts a mode name in any case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Modes, m) {
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want %s or %s)", s, ModeExtract, ModeNormalize)
}

// Plan returns the proposals of mode for files, sorted by original name.
// The extract plan keeps only names that change; the normalize plan keeps
// every file, mapping unchanged ones to themselves.
func Plan(files []string, mode Mode) []model.RenameProposal {
	rule := chapter.Extract
	if mode == ModeNormalize {
		rule = chapter.Normalize
	}

	proposals := make([]model.RenameProposal, 0, len(files))
	for _, name := range files {
		p := model.RenameProposal{Original: name, Proposed: rule(name)}
		if mode == ModeExtract && !p.Changed() {
			continue
		}
		proposals = append(proposals, p)
	}

	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].Original < proposals[j].Original
	})
	return proposals
}
