package transfer

import (
	"errors"
	"fmt"

	"github.com/ytget/file-transfer/internal/api"
)

// User-visible messages
const (
	MsgSelectFileFirst    = "Please select a file first."
	MsgEnterFileName      = "Please enter a file name to download."
	MsgUploadUnexpected   = "An unexpected error occurred while uploading."
	MsgDownloadUnexpected = "An unexpected error occurred while downloading."
	MsgUploadFailed       = "Failed to upload file."
	MsgDownloadFailed     = "Failed to download file."
	MsgReadFailed         = "Unable to read the selected file."
	MsgSaveFailed         = "Unable to save the downloaded file."
)

// describeFailure maps a request failure to the string shown to the user.
// fallback replaces a missing server message, unexpected covers every
// failure without a response.
func describeFailure(err error, fallback, unexpected string) string {
	if se, ok := api.AsStatusError(err); ok {
		return fmt.Sprintf("Error %d: %s", se.StatusCode, se.MessageOr(fallback))
	}
	if errors.Is(err, api.ErrReadContent) {
		return MsgReadFailed
	}
	return unexpected
}
