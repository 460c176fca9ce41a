package ui

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/file-transfer/internal/config"
	"github.com/ytget/file-transfer/internal/model"
	"github.com/ytget/file-transfer/internal/platform"
	"github.com/ytget/file-transfer/internal/transfer"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	svc          transfer.Transferer
	settings     *config.Settings
	localization *Localization
	layout       *AdaptiveLayout
	log          *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	// runAsync starts an action off the UI thread
	runAsync func(func())

	uploadCard   *widget.Card
	downloadCard *widget.Card
	chooseBtn    *widget.Button
	uploadBtn    *widget.Button
	downloadBtn  *widget.Button
	settingsBtn  *widget.Button
	fileLabel    *widget.Label
	outcomeLabel *widget.Label
	nameEntry    *widget.Entry
	errorLabel   *widget.Label
	serverLabel  *widget.Label
	busyLabel    *widget.Label
	busySpinner  *widget.ProgressBarInfinite

	serverURL string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc transfer.Transferer, settings *config.Settings, log *logrus.Entry) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		log.WithError(err).Warn("Failed to create download directory")
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui := &RootUI{
		window:       window,
		app:          app,
		svc:          svc,
		settings:     settings,
		localization: localization,
		layout:       NewAdaptiveLayout(app.Driver().Device()),
		log:          log,
		ctx:          ctx,
		cancel:       cancel,
		runAsync:     func(fn func()) { go fn() },
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	svc.SetSaver(NewDialogSaver(window, settings, log.WithField("component", "saver")))
	svc.SetUpdateCallback(ui.onStateUpdate)
	svc.SetRecordCallback(ui.onRecord)

	ui.setupUI()
	ui.render(svc.State())
	return ui
}

// SetServer shows the API base URL in the footer
func (ui *RootUI) SetServer(baseURL string) {
	ui.serverURL = baseURL
	ui.serverLabel.SetText(ui.localization.GetText(KeyServer) + ": " + baseURL)
}

// Close cancels in-flight requests and pending save dialogs
func (ui *RootUI) Close() {
	ui.cancel()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Upload section
	ui.chooseBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyChooseFile), theme.FileIcon(), ui.onChooseFile)
	ui.fileLabel = widget.NewLabel("")
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis
	ui.uploadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyUpload), theme.UploadIcon(), ui.onUploadClick)
	ui.uploadBtn.Importance = widget.HighImportance
	ui.outcomeLabel = widget.NewLabel("")
	ui.outcomeLabel.Importance = widget.SuccessImportance
	ui.outcomeLabel.Wrapping = fyne.TextWrapWord

	ui.uploadCard = widget.NewCard(ui.localization.GetText(KeyUploadSection), "", container.NewVBox(
		container.NewBorder(nil, nil, ui.layout.TouchTarget(ui.chooseBtn), nil, ui.fileLabel),
		ui.layout.TouchTarget(ui.uploadBtn),
		ui.outcomeLabel,
	))

	// Download section
	ui.nameEntry = widget.NewEntry()
	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterFileName))
	ui.nameEntry.OnChanged = ui.svc.SetTargetName
	// Trigger download when user presses Enter in the name field
	ui.nameEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}
	ui.downloadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDownload), theme.DownloadIcon(), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.downloadCard = widget.NewCard(ui.localization.GetText(KeyDownloadSection), "", container.NewVBox(
		ui.nameEntry,
		ui.layout.TouchTarget(ui.downloadBtn),
	))

	// Shared error line and busy indicator
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.busyLabel = widget.NewLabel(ui.localization.GetText(KeyWorking))
	ui.busySpinner = widget.NewProgressBarInfinite()
	ui.busySpinner.Stop()
	busyRow := container.NewBorder(nil, nil, ui.busyLabel, nil, ui.busySpinner)

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	ui.serverLabel = widget.NewLabel("")
	ui.serverLabel.Importance = widget.LowImportance
	footer := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.serverLabel)

	content := container.NewBorder(
		nil,
		footer,
		nil,
		nil,
		container.NewVScroll(container.NewVBox(
			ui.layout.Sections(ui.uploadCard, ui.downloadCard),
			ui.errorLabel,
			busyRow,
		)),
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onDropped)
	ui.log.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.uploadCard.SetTitle(ui.localization.GetText(KeyUploadSection))
	ui.downloadCard.SetTitle(ui.localization.GetText(KeyDownloadSection))
	ui.chooseBtn.SetText(ui.localization.GetText(KeyChooseFile))
	ui.uploadBtn.SetText(ui.localization.GetText(KeyUpload))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterFileName))
	ui.busyLabel.SetText(ui.localization.GetText(KeyWorking))
	if ui.serverURL != "" {
		ui.SetServer(ui.serverURL)
	}

	ui.render(ui.svc.State())
}

// onStateUpdate receives state snapshots from the transfer service, which may
// call it from any goroutine
func (ui *RootUI) onStateUpdate(st model.State) {
	fyne.Do(func() {
		ui.render(st)
	})
}

// render applies a state snapshot to the widgets. Must run on the UI thread.
func (ui *RootUI) render(st model.State) {
	if st.HasFile() {
		ui.fileLabel.SetText(st.FileLabel())
	} else {
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileSelected))
	}

	setMessage(ui.outcomeLabel, st.Outcome)
	setMessage(ui.errorLabel, st.Error)

	if st.Busy {
		ui.chooseBtn.Disable()
		ui.uploadBtn.Disable()
		ui.downloadBtn.Disable()
		ui.busyLabel.Show()
		ui.busySpinner.Show()
		ui.busySpinner.Start()
	} else {
		ui.chooseBtn.Enable()
		ui.uploadBtn.Enable()
		ui.downloadBtn.Enable()
		ui.busySpinner.Stop()
		ui.busySpinner.Hide()
		ui.busyLabel.Hide()
	}
}

func setMessage(label *widget.Label, text string) {
	label.SetText(text)
	if text == "" {
		label.Hide()
	} else {
		label.Show()
	}
}

// onChooseFile opens the file picker
func (ui *RootUI) onChooseFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.log.WithError(err).Warn("File picker failed")
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		uri := reader.URI()
		if cerr := reader.Close(); cerr != nil {
			ui.log.WithError(cerr).Debug("Failed to close picker reader")
		}
		ui.selectURI(uri)
	}, ui.window)

	if dir, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetDownloadDirectory())); err == nil {
		d.SetLocation(dir)
	}
	d.Show()
}

// onDropped selects the first file dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	ui.selectURI(uris[0])
}

func (ui *RootUI) selectURI(uri fyne.URI) {
	file, err := fileFromURI(uri)
	if err != nil {
		ui.log.WithError(err).WithField("uri", uri.String()).Warn("Failed to select file")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+": "+uri.Name()), ui.window)
		return
	}
	ui.svc.SelectFile(file)
}

// fileFromURI turns a picked URI into a selection. Local files are opened
// from disk on demand, other schemes through the storage repository.
func fileFromURI(uri fyne.URI) (*model.SelectedFile, error) {
	if uri == nil {
		return nil, errors.New("no file URI")
	}
	if uri.Scheme() == "file" {
		return model.NewLocalFile(uri.Path())
	}

	return model.NewReaderFile(uri.Name(), -1, func() (io.ReadCloser, error) {
		r, err := storage.Reader(uri)
		if err != nil {
			return nil, err
		}
		return r, nil
	}), nil
}

// onUploadClick handles the upload button click
func (ui *RootUI) onUploadClick() {
	ui.runAsync(func() { ui.runAction("upload", ui.svc.Upload) })
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	ui.runAsync(func() { ui.runAction("download", ui.svc.Download) })
}

func (ui *RootUI) runAction(name string, action func(context.Context) error) {
	if err := action(ui.ctx); err != nil {
		ui.log.WithError(err).WithField("action", name).Debug("Action not started")
	}
}

// onRecord receives every finished action
func (ui *RootUI) onRecord(rec *model.Transfer) {
	if rec.Kind != model.TransferKindDownload || rec.Status != model.TransferStatusCompleted || rec.SavedPath == "" {
		return
	}

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadSaved),
		Content: rec.FileName,
	})
	fyne.Do(func() {
		ui.showToastNotification(rec)
	})
}

// showToastNotification shows an in-app toast for a saved download
func (ui *RootUI) showToastNotification(rec *model.Transfer) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyDownloadSaved))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(rec.FileName)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	path := rec.SavedPath
	revealBtn := widget.NewButton(ui.localization.GetText(KeyShowInFolder), func() {
		ui.openPath(path, platform.OpenFileInManager)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.openPath(path, platform.OpenFileWithDefaultApp)
	})

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		toast.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toast = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toast.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toast.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}

func (ui *RootUI) openPath(path string, open func(string) error) {
	if err := open(path); err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("Failed to open saved file")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}
