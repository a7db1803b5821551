package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/ytget/chapter-renamer/internal/platform"
	"github.com/ytget/chapter-renamer/internal/rename"
)

// Settings keys for Fyne preferences
const (
	KeyLastFolder         = "last_folder"
	KeyLanguage           = "app_language"
	KeyMode               = "rename_mode"
	KeyWriteArtist        = "write_artist"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "zh"
	DefaultMode               = rename.ModeExtract
	DefaultWriteArtist        = true
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastFolder returns the folder opened last, or the home directory
func (s *Settings) GetLastFolder() string {
	dir := s.app.Preferences().String(KeyLastFolder)
	if dir != "" {
		return dir
	}
	defaultDir, err := platform.DefaultStartDir()
	if err != nil {
		return os.TempDir()
	}
	return defaultDir
}

// SetLastFolder remembers the folder the user picked
func (s *Settings) SetLastFolder(dir string) {
	s.app.Preferences().SetString(KeyLastFolder, dir)
}

// GetMode returns the rename mode shown by default
func (s *Settings) GetMode() rename.Mode {
	mode, err := rename.ParseMode(s.app.Preferences().String(KeyMode))
	if err != nil {
		return DefaultMode
	}
	return mode
}

// SetMode sets the default rename mode
func (s *Settings) SetMode(mode rename.Mode) {
	s.app.Preferences().SetString(KeyMode, string(mode))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWriteArtist returns whether tag sync also writes the artist field
func (s *Settings) GetWriteArtist() bool {
	return s.app.Preferences().BoolWithFallback(KeyWriteArtist, DefaultWriteArtist)
}

// SetWriteArtist sets whether tag sync also writes the artist field
func (s *Settings) SetWriteArtist(write bool) {
	s.app.Preferences().SetBool(KeyWriteArtist, write)
}

// GetAutoRevealOnComplete returns whether to open the folder after a batch
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the folder after a batch
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"zh": "中文",
		"en": "English",
	}
}
