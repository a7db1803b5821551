package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/ytget/chapter-renamer/internal/chapter"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNotDirectory is returned when a folder argument is missing or is not a directory.
var ErrNotDirectory = errors.New("not a valid folder")

// ListFiles returns the names of the regular files directly inside dir,
// sorted. Subdirectories, symlinks to directories and other special entries
// are skipped; nothing below dir is visited.
func ListFiles(dir string) ([]string, error) {
	if err := ValidateDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
			continue
		}
		// Symlinks count when they resolve to a regular file.
		if entry.Type()&fs.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil && fi.Mode().IsRegular() {
				names = append(names, entry.Name())
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// FilterByExtension keeps the names whose extension (case-insensitive) is in exts.
// exts are lowercase with a leading dot. A dotfile such as ".mp3" has no
// extension.
func FilterByExtension(names []string, exts map[string]bool) []string {
	var out []string
	for _, name := range names {
		if _, ext := chapter.SplitExt(name); exts[strings.ToLower(ext)] {
			out = append(out, name)
		}
	}
	return out
}

// ValidateDir reports ErrNotDirectory when dir is empty or not a directory.
func ValidateDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: no folder selected", ErrNotDirectory)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotDirectory, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// Exists reports whether anything (file, directory or dangling symlink) occupies path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// DefaultStartDir returns the folder the UI starts in when none was saved.
func DefaultStartDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return homeDir, nil
}

// OpenFolderInManager opens dir in the system file manager
func OpenFolderInManager(dir string) error {
	if err := ValidateDir(dir); err != nil {
		return err
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first, then the common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
