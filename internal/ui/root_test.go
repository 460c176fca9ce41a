package ui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/file-transfer/internal/config"
	"github.com/ytget/file-transfer/internal/logging"
	"github.com/ytget/file-transfer/internal/model"
	"github.com/ytget/file-transfer/internal/transfer"
)

type stubAPI struct {
	mu      sync.Mutex
	uploads int
}

func (s *stubAPI) Upload(_ context.Context, _ string, content io.Reader) (string, error) {
	s.mu.Lock()
	s.uploads++
	s.mu.Unlock()
	_, err := io.ReadAll(content)
	return "File uploaded successfully", err
}

func (s *stubAPI) Download(_ context.Context, _ string) ([]byte, error) {
	return []byte("data"), nil
}

func newTestRoot(t *testing.T) (*RootUI, *transfer.Service, *stubAPI) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())
	settings.SetLanguage("en")

	api := &stubAPI{}
	svc := transfer.NewService(api)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, app, svc, settings, logging.Discard())
	ui.runAsync = func(fn func()) { fn() }
	return ui, svc, api
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	assert.Equal(t, "File Upload and Download", ui.window.Title())
	assert.Equal(t, "No file selected", ui.fileLabel.Text)
	assert.Equal(t, "Enter file name", ui.nameEntry.PlaceHolder)
	assert.False(t, ui.errorLabel.Visible())
	assert.False(t, ui.outcomeLabel.Visible())
	assert.False(t, ui.uploadBtn.Disabled())
	assert.False(t, ui.downloadBtn.Disabled())
}

func TestRootUI_Render(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.render(model.State{
		File:    model.NewReaderFile("a.txt", 12, nil),
		Outcome: "stored",
		Error:   "Error 413: too large",
		Busy:    true,
	})

	assert.Equal(t, "a.txt (12 B)", ui.fileLabel.Text)
	assert.Equal(t, "stored", ui.outcomeLabel.Text)
	assert.True(t, ui.outcomeLabel.Visible())
	assert.Equal(t, "Error 413: too large", ui.errorLabel.Text)
	assert.True(t, ui.errorLabel.Visible())
	assert.True(t, ui.uploadBtn.Disabled())
	assert.True(t, ui.downloadBtn.Disabled())
	assert.True(t, ui.chooseBtn.Disabled())

	ui.render(model.State{})
	assert.False(t, ui.errorLabel.Visible())
	assert.False(t, ui.uploadBtn.Disabled())
}

func TestRootUI_UploadWithoutFile(t *testing.T) {
	ui, svc, api := newTestRoot(t)

	ui.onUploadClick()

	assert.Equal(t, transfer.MsgSelectFileFirst, svc.State().Error)
	assert.Zero(t, api.uploads)
}

func TestRootUI_SelectAndUpload(t *testing.T) {
	ui, svc, api := newTestRoot(t)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI(path)})
	require.True(t, svc.State().HasFile())
	assert.Equal(t, "notes.txt", svc.State().File.Name)

	ui.onUploadClick()

	assert.Equal(t, 1, api.uploads)
	assert.Equal(t, "File uploaded successfully", svc.State().Outcome)
	assert.Empty(t, svc.State().Error)
}

func TestRootUI_NameEntryUpdatesTarget(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	test.Type(ui.nameEntry, "report.pdf")

	assert.Equal(t, "report.pdf", svc.State().TargetName)
}

func TestRootUI_DownloadWithoutName(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	ui.onDownloadClick()

	assert.Equal(t, transfer.MsgEnterFileName, svc.State().Error)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", ui.settings.GetLanguage())
	assert.Equal(t, "Загрузить", ui.uploadBtn.Text)
	assert.Equal(t, "Введите имя файла", ui.nameEntry.PlaceHolder)
	assert.Equal(t, "Файл не выбран", ui.fileLabel.Text)
}

func TestRootUI_SetServer(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.SetServer("http://localhost:8080/api/v1")
	assert.Equal(t, "Server: http://localhost:8080/api/v1", ui.serverLabel.Text)

	ui.onLanguageChange("pt")
	assert.Equal(t, "Servidor: http://localhost:8080/api/v1", ui.serverLabel.Text)
}

func TestRootUI_CloseCancelsContext(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.Close()

	assert.ErrorIs(t, ui.ctx.Err(), context.Canceled)
}

func TestFileFromURI(t *testing.T) {
	t.Run("local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.bin")
		require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

		file, err := fileFromURI(storage.NewFileURI(path))
		require.NoError(t, err)
		assert.Equal(t, "data.bin", file.Name)
		assert.Equal(t, int64(5), file.Size)
	})

	t.Run("missing local file", func(t *testing.T) {
		_, err := fileFromURI(storage.NewFileURI(filepath.Join(t.TempDir(), "missing")))
		assert.Error(t, err)
	})

	t.Run("other scheme", func(t *testing.T) {
		uri, err := storage.ParseURI("content://media/external/report.pdf")
		require.NoError(t, err)

		file, err := fileFromURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", file.Name)
		assert.Equal(t, int64(-1), file.Size)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := fileFromURI(nil)
		assert.Error(t, err)
	})
}
