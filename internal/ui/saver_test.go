package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/file-transfer/internal/config"
	"github.com/ytget/file-transfer/internal/logging"
)

func TestDialogSaver_DirectSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	dir := t.TempDir()
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(dir)
	settings.SetAskWhereToSave(false)

	saver := NewDialogSaver(test.NewWindow(nil), settings, logging.Discard())
	require.NoError(t, saver.TriggerFileSave(context.Background(), []byte("pdf"), "report.pdf"))

	want := filepath.Join(dir, "report.pdf")
	assert.Equal(t, want, saver.LastPath())

	got, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(got))
}

func TestDialogSaver_DirectSaveInvalidName(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())
	settings.SetAskWhereToSave(false)

	saver := NewDialogSaver(test.NewWindow(nil), settings, logging.Discard())
	assert.Error(t, saver.TriggerFileSave(context.Background(), []byte("x"), ".."))
	assert.Empty(t, saver.LastPath())
}

type memWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (w *memWriter) Close() error {
	w.closed = true
	return nil
}

func (w *memWriter) URI() fyne.URI {
	return w.uri
}

func newAskingSaver(t *testing.T) *DialogSaver {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())
	settings.SetAskWhereToSave(true)
	settings.SetRevealAfterSave(false)

	return NewDialogSaver(test.NewWindow(nil), settings, logging.Discard())
}

func TestDialogFileName(t *testing.T) {
	assert.Equal(t, "report.pdf", dialogFileName("report.pdf"))
	assert.Equal(t, "q1.pdf", dialogFileName("reports/q1.pdf"))
	assert.Equal(t, "..", dialogFileName(".."))
}

func TestDialogCallback(t *testing.T) {
	t.Run("dismissed", func(t *testing.T) {
		result := make(chan saveResult, 1)
		dialogCallback([]byte("x"), result)(nil, nil)

		r := <-result
		assert.NoError(t, r.err)
		assert.Empty(t, r.path)
	})

	t.Run("dialog error", func(t *testing.T) {
		result := make(chan saveResult, 1)
		dialogCallback([]byte("x"), result)(nil, errors.New("denied"))

		assert.EqualError(t, (<-result).err, "denied")
	})

	t.Run("written", func(t *testing.T) {
		w := &memWriter{uri: storage.NewFileURI("/home/user/report.pdf")}
		result := make(chan saveResult, 1)
		dialogCallback([]byte("pdf"), result)(w, nil)

		r := <-result
		require.NoError(t, r.err)
		assert.Equal(t, "/home/user/report.pdf", r.path)
		assert.Equal(t, "pdf", w.String())
		assert.True(t, w.closed)
	})
}

func TestDialogSaver_DialogDone(t *testing.T) {
	saver := newAskingSaver(t)

	// dismissing the dialog is not an error and records no path
	assert.NoError(t, saver.dialogDone(saveResult{}, "report.pdf"))
	assert.Empty(t, saver.LastPath())

	assert.NoError(t, saver.dialogDone(saveResult{path: "/home/user/report.pdf"}, "report.pdf"))
	assert.Equal(t, "/home/user/report.pdf", saver.LastPath())

	assert.Error(t, saver.dialogDone(saveResult{err: errors.New("disk full")}, "report.pdf"))
}

func TestDialogSaver_DialogHonorsContext(t *testing.T) {
	saver := newAskingSaver(t)
	require.NoError(t, saver.dialogDone(saveResult{path: "/old/path"}, "old"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := saver.TriggerFileSave(ctx, []byte("x"), "report.pdf")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, saver.LastPath())
}
