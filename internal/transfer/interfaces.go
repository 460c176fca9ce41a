package transfer

import (
	"context"
	"io"

	"github.com/ytget/file-transfer/internal/model"
)

// Transferer defines the interface of the transfer service used by front-ends.
type Transferer interface {
	SetUpdateCallback(func(model.State))
	SetRecordCallback(func(*model.Transfer))
	SetSaver(FileSaver)
	State() model.State

	// SelectFile stores the chosen file and clears both messages
	SelectFile(file *model.SelectedFile)
	// SetTargetName stores the name of the remote file to download
	SetTargetName(name string)

	Upload(ctx context.Context) error
	Download(ctx context.Context) error
}

// API is the subset of the HTTP client the service needs
type API interface {
	Upload(ctx context.Context, name string, content io.Reader) (string, error)
	Download(ctx context.Context, name string) ([]byte, error)
}

// FileSaver hands downloaded content to the user, e.g. through a save dialog
// or by writing it into the download directory
type FileSaver interface {
	TriggerFileSave(ctx context.Context, data []byte, suggestedName string) error
}

// FileSaverFunc adapts a function to FileSaver
type FileSaverFunc func(ctx context.Context, data []byte, suggestedName string) error

// TriggerFileSave calls f
func (f FileSaverFunc) TriggerFileSave(ctx context.Context, data []byte, suggestedName string) error {
	return f(ctx, data, suggestedName)
}

// pathReporter is implemented by savers that know where the file ended up
type pathReporter interface {
	LastPath() string
}
