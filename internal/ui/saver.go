package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/sirupsen/logrus"

	"github.com/ytget/file-transfer/internal/config"
	"github.com/ytget/file-transfer/internal/platform"
)

// DialogSaver hands downloads to the user the way a browser does: a save
// dialog pre-filled with the suggested name, or a silent save into the
// download directory when the user turned the dialog off
type DialogSaver struct {
	window   fyne.Window
	settings *config.Settings
	log      *logrus.Entry

	mu       sync.Mutex
	lastPath string
}

type saveResult struct {
	path string
	err  error
}

// NewDialogSaver creates a saver bound to window
func NewDialogSaver(window fyne.Window, settings *config.Settings, log *logrus.Entry) *DialogSaver {
	return &DialogSaver{window: window, settings: settings, log: log}
}

// TriggerFileSave blocks until the user picked a location and the bytes are
// written, or the dialog was dismissed. Dismissing is not an error.
func (s *DialogSaver) TriggerFileSave(ctx context.Context, data []byte, suggestedName string) error {
	s.mu.Lock()
	s.lastPath = ""
	s.mu.Unlock()

	if !s.settings.GetAskWhereToSave() {
		disk := platform.NewDiskSaver(s.settings.GetDownloadDirectory())
		if err := disk.TriggerFileSave(ctx, data, suggestedName); err != nil {
			return err
		}
		s.saved(disk.LastPath())
		return nil
	}

	result := make(chan saveResult, 1)
	fyne.Do(func() {
		d := dialog.NewFileSave(dialogCallback(data, result), s.window)
		d.SetFileName(dialogFileName(suggestedName))
		if dir, err := storage.ListerForURI(storage.NewFileURI(s.settings.GetDownloadDirectory())); err == nil {
			d.SetLocation(dir)
		}
		d.Show()
	})

	select {
	case r := <-result:
		return s.dialogDone(r, suggestedName)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dialogFileName returns the name the save dialog is pre-filled with
func dialogFileName(suggestedName string) string {
	if safe, err := platform.SafeFileName(suggestedName); err == nil {
		return safe
	}
	return suggestedName
}

// dialogCallback writes data to the location picked in the save dialog and
// reports the outcome on result. A nil writer means the dialog was dismissed.
func dialogCallback(data []byte, result chan<- saveResult) func(fyne.URIWriteCloser, error) {
	return func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			result <- saveResult{err: err}
			return
		}
		if writer == nil {
			result <- saveResult{}
			return
		}

		_, werr := writer.Write(data)
		if cerr := writer.Close(); werr == nil {
			werr = cerr
		}
		result <- saveResult{path: writer.URI().Path(), err: werr}
	}
}

func (s *DialogSaver) dialogDone(r saveResult, suggestedName string) error {
	if r.err != nil {
		return r.err
	}
	if r.path == "" {
		s.log.WithField("file", suggestedName).Debug("Save dialog dismissed")
		return nil
	}
	s.saved(r.path)
	return nil
}

// LastPath returns where the most recent download was written
func (s *DialogSaver) LastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPath
}

func (s *DialogSaver) saved(path string) {
	s.mu.Lock()
	s.lastPath = path
	s.mu.Unlock()

	s.log.WithField("path", path).Info("Download saved")

	if s.settings.GetRevealAfterSave() {
		if err := platform.OpenFileInManager(path); err != nil {
			s.log.WithError(err).WithField("path", path).Warn("Failed to reveal saved file")
		}
	}
}
