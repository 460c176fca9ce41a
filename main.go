package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/file-transfer/internal/api"
	"github.com/ytget/file-transfer/internal/config"
	"github.com/ytget/file-transfer/internal/logging"
	"github.com/ytget/file-transfer/internal/transfer"
	"github.com/ytget/file-transfer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.file-transfer"
	AppName = "File Transfer"

	WindowWidth  = 720
	WindowHeight = 420
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.WithField("version", version).Infof("%s starting", AppName)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTransferTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if cfg.DownloadDir != "" {
		settings.SetDownloadDirectory(cfg.DownloadDir)
	}

	// Initialize services
	baseURL := cfg.Server.BaseURL()
	client := api.NewClient(baseURL, api.WithLogger(logging.Component(logger, "api")))
	svc := transfer.NewService(client, transfer.WithLogger(logging.Component(logger, "transfer")))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, svc, settings, logging.Component(logger, "ui"))
	rootUI.SetServer(baseURL)
	myWindow.SetOnClosed(rootUI.Close)

	logger.WithField("server", baseURL).Info("Window ready")

	// Show and run
	myWindow.ShowAndRun()
}
