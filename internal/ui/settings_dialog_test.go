package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/file-transfer/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	settings.SetDownloadDirectory("/tmp/old")

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), func() { saved = true })
	sd.loadCurrentSettings()

	assert.Equal(t, "/tmp/old", sd.downloadDirEntry.Text)
	assert.True(t, sd.askCheck.Checked)
	assert.Equal(t, "System Default", sd.languageSelect.Selected)

	sd.downloadDirEntry.SetText("/tmp/new")
	sd.askCheck.SetChecked(false)
	sd.revealCheck.SetChecked(true)
	sd.languageSelect.SetSelected("Русский")
	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, "/tmp/new", settings.GetDownloadDirectory())
	assert.False(t, settings.GetAskWhereToSave())
	assert.True(t, settings.GetRevealAfterSave())
	assert.Equal(t, "ru", settings.GetLanguage())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	settings.SetDownloadDirectory("/tmp/old")

	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), func() {
		t.Fatal("onSaved must not run on cancel")
	})
	sd.loadCurrentSettings()
	sd.downloadDirEntry.SetText("/tmp/new")
	sd.onSave(false)

	assert.Equal(t, "/tmp/old", settings.GetDownloadDirectory())
}
