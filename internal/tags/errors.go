package tags

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNoTagWriter means no container writer is registered at all.
	ErrNoTagWriter = errors.New("no tag writer available")

	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrCorruptContainer  = errors.New("corrupt container")
	ErrPermission        = errors.New("permission denied")
)

// classify wraps err with the tag error kind it belongs to.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnsupportedFormat), errors.Is(err, ErrCorruptContainer), errors.Is(err, ErrPermission):
		return err
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	case errors.Is(err, fs.ErrNotExist):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	}
}

// Reason returns the short per-file message shown for err.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrUnsupportedFormat.Error()
	case errors.Is(err, ErrPermission):
		return ErrPermission.Error()
	case errors.Is(err, fs.ErrNotExist):
		return "file not found"
	default:
		return err.Error()
	}
}
