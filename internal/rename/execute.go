package rename

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ytget/chapter-renamer/internal/model"
	"github.com/ytget/chapter-renamer/internal/platform"
)

// Failure reasons reported per pair
const (
	ReasonDestinationExists = "destination exists"
	ReasonInvalidName       = "invalid name"
	ReasonSourceMissing     = "source not found"
	ReasonPermissionDenied  = "permission denied"
)

// Execute renames every changed pair inside dir, sequentially and in order.
// A pair fails when something already exists at its destination or the
// rename itself fails; failures never stop the batch.
func Execute(dir string, proposals []model.RenameProposal) model.BatchResult {
	return execute(dir, model.Pending(proposals), func() {})
}

func execute(dir string, pending []model.RenameProposal, step func()) model.BatchResult {
	var result model.BatchResult
	for _, p := range pending {
		if reason := apply(dir, p); reason != "" {
			log.Warn().
				Str("from", p.Original).
				Str("to", p.Proposed).
				Str("reason", reason).
				Msg("Rename skipped")
			result.Fail(p, reason)
		} else {
			log.Debug().
				Str("from", p.Original).
				Str("to", p.Proposed).
				Msg("Renamed")
			result.Succeeded++
		}
		step()
	}
	return result
}

// apply renames one pair and returns the failure reason, or "" on success.
func apply(dir string, p model.RenameProposal) string {
	if !validName(p.Original) || !validName(p.Proposed) {
		return ReasonInvalidName
	}

	src := filepath.Join(dir, p.Original)
	dst := filepath.Join(dir, p.Proposed)

	if platform.Exists(dst) {
		return ReasonDestinationExists
	}

	if err := os.Rename(src, dst); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return ReasonSourceMissing
		case errors.Is(err, fs.ErrPermission):
			return ReasonPermissionDenied
		default:
			return err.Error()
		}
	}
	return ""
}

// validName rejects names that would leave the folder.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}
