package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/file-transfer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir     = "download_directory"
	KeyLanguage        = "app_language"
	KeyAskWhereToSave  = "ask_where_to_save"
	KeyRevealAfterSave = "reveal_after_save"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultAskWhereToSave  = true
	DefaultRevealAfterSave = false
)

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), "downloads")
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
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

// GetAskWhereToSave returns whether downloads open a save dialog instead of
// going straight into the download directory
func (s *Settings) GetAskWhereToSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAskWhereToSave, DefaultAskWhereToSave)
}

// SetAskWhereToSave sets whether downloads open a save dialog
func (s *Settings) SetAskWhereToSave(ask bool) {
	s.app.Preferences().SetBool(KeyAskWhereToSave, ask)
}

// GetRevealAfterSave returns whether to reveal saved downloads in the file manager
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether to reveal saved downloads
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
