package command

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/ytget/file-transfer/internal/api"
	"github.com/ytget/file-transfer/internal/config"
	"github.com/ytget/file-transfer/internal/logging"
	"github.com/ytget/file-transfer/internal/model"
	"github.com/ytget/file-transfer/internal/platform"
	"github.com/ytget/file-transfer/internal/transfer"
)

// Flag names
const (
	FlagHost   = "host"
	FlagPort   = "port"
	FlagConfig = "config"
	FlagDebug  = "debug"
	FlagDir    = "dir"
)

// ExitFailure is the exit code of a failed transfer
const ExitFailure = 1

// runner holds what the Before hook resolved for the commands
type runner struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewApp builds the command line application. Output goes to out, logs to
// errOut. Exit codes are returned as cli.ExitCoder errors and never call
// os.Exit.
func NewApp(out, errOut io.Writer, version string) *cli.App {
	r := &runner{}

	return &cli.App{
		Name:      "file-transfer",
		Usage:     "Upload files to and download files from a transfer server",
		Version:   version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: FlagHost, Usage: "server host (overrides SERVER_HOST)"},
			&cli.IntFlag{Name: FlagPort, Usage: "server port (overrides SERVER_PORT)"},
			&cli.StringFlag{Name: FlagConfig, Value: ".", Usage: "directory holding config.yaml and .env"},
			&cli.BoolFlag{Name: FlagDebug, Usage: "enable debug logging"},
		},
		Before: func(c *cli.Context) error {
			return r.setup(c, errOut)
		},
		Commands: []*cli.Command{
			{
				Name:      "upload",
				Aliases:   []string{"u"},
				Usage:     "Upload a local file",
				ArgsUsage: "PATH",
				Action:    r.upload,
			},
			{
				Name:      "download",
				Aliases:   []string{"d"},
				Usage:     "Download a file by name",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: FlagDir, Usage: "directory to save into (default: DOWNLOAD_DIR or ~/Downloads)"},
				},
				Action: r.download,
			},
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (r *runner) setup(c *cli.Context, errOut io.Writer) error {
	cfg, err := config.Load(c.String(FlagConfig))
	if err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}

	if c.IsSet(FlagHost) {
		cfg.Server.Host = c.String(FlagHost)
	}
	if c.IsSet(FlagPort) {
		cfg.Server.Port = c.Int(FlagPort)
	}
	if err := cfg.Server.Validate(); err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}
	if c.Bool(FlagDebug) {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" && isTerminal(errOut) {
		cfg.LogFormat = logging.FormatText
	}

	r.cfg = cfg
	r.log = logging.NewWithOutput(errOut, cfg.LogLevel, cfg.LogFormat)
	return nil
}

// service wires a transfer service against the configured server and
// captures the record of the action it runs
func (r *runner) service(opts ...transfer.Option) (*transfer.Service, func() *model.Transfer) {
	client := api.NewClient(r.cfg.Server.BaseURL(), api.WithLogger(logging.Component(r.log, "api")))
	svc := transfer.NewService(client, append(opts, transfer.WithLogger(logging.Component(r.log, "transfer")))...)

	var last *model.Transfer
	svc.SetRecordCallback(func(rec *model.Transfer) {
		last = rec
	})
	return svc, func() *model.Transfer { return last }
}

func (r *runner) upload(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: upload PATH", ExitFailure)
	}

	file, err := model.NewLocalFile(path)
	if err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}

	svc, record := r.service()
	svc.SelectFile(file)
	if err := svc.Upload(c.Context); err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}

	rec := record()
	if err := recordError(rec); err != nil {
		return err
	}
	if rec.Message == "" {
		fmt.Fprintf(c.App.Writer, "uploaded %s\n", file.Name)
		return nil
	}
	fmt.Fprintln(c.App.Writer, rec.Message)
	return nil
}

func (r *runner) download(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return cli.Exit("usage: download NAME [--dir DIR]", ExitFailure)
	}

	dir, err := r.downloadDir(c.String(FlagDir))
	if err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}

	svc, record := r.service(transfer.WithSaver(platform.NewDiskSaver(dir)))
	svc.SetTargetName(name)
	if err := svc.Download(c.Context); err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}

	rec := record()
	if err := recordError(rec); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "saved %s (%s)\n", rec.SavedPath, model.FormatSize(rec.Size))
	fmt.Fprintf(c.App.Writer, "blake2b-256 %s\n", rec.Checksum)
	return nil
}

// downloadDir resolves the target directory: flag, then configuration, then
// the user's Downloads folder
func (r *runner) downloadDir(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if r.cfg.DownloadDir != "" {
		return r.cfg.DownloadDir, nil
	}
	return platform.GetHomeDownloadsDir()
}

func recordError(rec *model.Transfer) error {
	if rec == nil {
		return cli.Exit("transfer did not run", ExitFailure)
	}
	if rec.Status != model.TransferStatusCompleted {
		return cli.Exit(rec.LastError, ExitFailure)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
