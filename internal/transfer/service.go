package transfer

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/file-transfer/internal/logging"
	"github.com/ytget/file-transfer/internal/model"
)

// ErrBusy is returned when an action is started while another is in flight
var ErrBusy = errors.New("another transfer is in progress")

// Service handles the upload and download actions of the transfer window
type Service struct {
	client API
	saver  FileSaver
	log    *logrus.Entry

	mu    sync.Mutex
	state model.State

	onUpdate func(model.State)     // callback for UI updates
	onRecord func(*model.Transfer) // callback for finished actions
}

// Option configures a Service
type Option func(*Service)

// WithSaver sets the FileSaver used by Download
func WithSaver(saver FileSaver) Option {
	return func(s *Service) {
		s.saver = saver
	}
}

// WithLogger sets the service logger
func WithLogger(log *logrus.Entry) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a new transfer service
func NewService(client API, opts ...Option) *Service {
	s := &Service{
		client: client,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(model.State)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetRecordCallback sets the callback receiving every finished action
func (s *Service) SetRecordCallback(callback func(*model.Transfer)) {
	s.mu.Lock()
	s.onRecord = callback
	s.mu.Unlock()
}

// SetSaver replaces the FileSaver used by Download
func (s *Service) SetSaver(saver FileSaver) {
	s.mu.Lock()
	s.saver = saver
	s.mu.Unlock()
}

// State returns a snapshot of the current state
func (s *Service) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectFile stores the chosen file and clears both messages. A nil file
// (cancelled picker) leaves the state untouched.
func (s *Service) SelectFile(file *model.SelectedFile) {
	if file == nil {
		return
	}

	s.update(func(st *model.State) {
		st.File = file
		st.Error = ""
		st.Outcome = ""
	})
	s.log.WithField("file", file.Name).Debug("File selected")
}

// SetTargetName stores the name of the remote file to download
func (s *Service) SetTargetName(name string) {
	s.update(func(st *model.State) {
		st.TargetName = name
	})
}

// Upload sends the selected file. Failures end up in the state's Error; the
// returned error is only ErrBusy.
func (s *Service) Upload(ctx context.Context) error {
	var selected *model.SelectedFile
	rec, proceed, err := s.begin(model.TransferKindUpload, func(st *model.State) (string, string) {
		if st.File == nil {
			return "", MsgSelectFileFirst
		}
		selected = st.File
		return st.File.Name, ""
	})
	if !proceed {
		return err
	}
	rec.Size = selected.Size

	content, err := selected.Open()
	if err != nil {
		s.log.WithError(err).WithField("file", selected.Name).Warn("Failed to open selected file")
		s.fail(rec, MsgReadFailed)
		return nil
	}
	defer content.Close()

	digest := newDigest()
	message, err := s.client.Upload(ctx, selected.Name, io.TeeReader(content, digest))
	if err != nil {
		s.log.WithError(err).WithField("file", selected.Name).Debug("Upload failed")
		s.fail(rec, describeFailure(err, MsgUploadFailed, MsgUploadUnexpected))
		return nil
	}

	rec.Message = message
	rec.Checksum = hex.EncodeToString(digest.Sum(nil))
	s.finish(rec, model.TransferStatusCompleted, func(st *model.State) {
		st.Outcome = message
	})
	return nil
}

// Download fetches the typed file name and hands the bytes to the saver with
// the name exactly as typed. Failures end up in the state's Error; the
// returned error is only ErrBusy.
func (s *Service) Download(ctx context.Context) error {
	rec, proceed, err := s.begin(model.TransferKindDownload, func(st *model.State) (string, string) {
		if st.TargetName == "" {
			return "", MsgEnterFileName
		}
		return st.TargetName, ""
	})
	if !proceed {
		return err
	}
	name := rec.FileName

	data, err := s.client.Download(ctx, name)
	if err != nil {
		s.log.WithError(err).WithField("file", name).Debug("Download failed")
		s.fail(rec, describeFailure(err, MsgDownloadFailed, MsgDownloadUnexpected))
		return nil
	}
	rec.Size = int64(len(data))
	rec.Checksum = Checksum(data)

	s.mu.Lock()
	saver := s.saver
	s.mu.Unlock()

	if saver == nil {
		s.log.WithField("file", name).Error("No file saver configured")
		s.fail(rec, MsgSaveFailed)
		return nil
	}
	if err := saver.TriggerFileSave(ctx, data, name); err != nil {
		s.log.WithError(err).WithField("file", name).Warn("Failed to save download")
		s.fail(rec, MsgSaveFailed)
		return nil
	}
	if pr, ok := saver.(pathReporter); ok {
		rec.SavedPath = pr.LastPath()
	}

	s.finish(rec, model.TransferStatusCompleted, nil)
	return nil
}

// begin resets both messages and validates the action under the lock. check
// returns the subject of the action, or a validation message that rejects it
// without any request. proceed is false when the action must stop here.
func (s *Service) begin(kind model.TransferKind, check func(*model.State) (string, string)) (rec *model.Transfer, proceed bool, err error) {
	s.mu.Lock()
	if s.state.Busy {
		s.mu.Unlock()
		return nil, false, ErrBusy
	}

	s.state.Error = ""
	s.state.Outcome = ""

	subject, invalid := check(&s.state)
	rec = model.NewTransfer(kind, subject)

	if invalid != "" {
		s.state.Error = invalid
		rec.LastError = invalid
		rec.Finish(model.TransferStatusRejected)
	} else {
		s.state.Busy = true
		rec.Status = model.TransferStatusRunning
	}
	snapshot, onUpdate, onRecord := s.state, s.onUpdate, s.onRecord
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
	if invalid != "" {
		s.log.WithField("kind", kind).Debug(invalid)
		if onRecord != nil {
			onRecord(rec)
		}
		return rec, false, nil
	}
	return rec, true, nil
}

func (s *Service) fail(rec *model.Transfer, message string) {
	rec.LastError = message
	s.finish(rec, model.TransferStatusFailed, func(st *model.State) {
		st.Error = message
	})
}

// finish clears the busy flag, applies the result and publishes it
func (s *Service) finish(rec *model.Transfer, status model.TransferStatus, apply func(*model.State)) {
	rec.Finish(status)

	s.mu.Lock()
	s.state.Busy = false
	if apply != nil {
		apply(&s.state)
	}
	snapshot, onUpdate, onRecord := s.state, s.onUpdate, s.onRecord
	s.mu.Unlock()

	fields := logrus.Fields{
		"id":       rec.ID,
		"duration": rec.Duration(),
	}
	if rec.Checksum != "" {
		fields["blake2b"] = rec.Checksum
	}
	s.log.WithFields(fields).Info(rec.Summary())

	if onUpdate != nil {
		onUpdate(snapshot)
	}
	if onRecord != nil {
		onRecord(rec)
	}
}

// update applies fn under the lock and notifies the UI
func (s *Service) update(fn func(*model.State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot, onUpdate := s.state, s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
}

var _ Transferer = (*Service)(nil)
