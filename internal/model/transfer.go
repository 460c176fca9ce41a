package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transfer records a single upload or download action
type Transfer struct {
	ID         string
	Kind       TransferKind
	FileName   string         // selected file name or download target
	Status     TransferStatus
	Message    string         // server message on success
	LastError  string         // user-visible error if any
	Size       int64          // bytes sent or received
	SavedPath  string         // where a download ended up, if known
	Checksum   string         // BLAKE2b-256 of the content, hex encoded
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewTransfer creates a pending transfer record
func NewTransfer(kind TransferKind, fileName string) *Transfer {
	return &Transfer{
		ID:        generateTransferID(),
		Kind:      kind,
		FileName:  fileName,
		Status:    TransferStatusPending,
		StartedAt: time.Now(),
	}
}

// Finish moves the record into a final status
func (t *Transfer) Finish(status TransferStatus) {
	t.Status = status
	t.FinishedAt = time.Now()
}

// Duration returns how long the action took, or zero while it is active
func (t *Transfer) Duration() time.Duration {
	if t.FinishedAt.IsZero() || t.StartedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

// Summary returns a one-line description suitable for logs and the CLI
func (t *Transfer) Summary() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s: %s", t.Kind, displayName(t.FileName), t.Status))

	switch {
	case t.LastError != "":
		b.WriteString(" (" + t.LastError + ")")
	case t.Message != "":
		b.WriteString(" (" + t.Message + ")")
	case t.SavedPath != "":
		b.WriteString(" -> " + t.SavedPath)
	}
	return b.String()
}

func displayName(name string) string {
	if name == "" {
		return "—"
	}
	return name
}

// generateTransferID generates a unique transfer ID
func generateTransferID() string {
	return "transfer-" + uuid.NewString()
}
