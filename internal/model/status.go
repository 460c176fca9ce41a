package model

// TransferStatus represents the status of an upload or download action
type TransferStatus string

const (
	// TransferStatusPending means the action was created but not started
	TransferStatusPending TransferStatus = "Pending"

	// TransferStatusRunning means the request is in flight
	TransferStatusRunning TransferStatus = "Running"

	// TransferStatusCompleted means the action finished successfully
	TransferStatusCompleted TransferStatus = "Completed"

	// TransferStatusFailed means the request failed or the server returned an error
	TransferStatusFailed TransferStatus = "Failed"

	// TransferStatusRejected means local validation stopped the action before any request
	TransferStatusRejected TransferStatus = "Rejected"
)

// String returns the string representation of TransferStatus
func (ts TransferStatus) String() string {
	return string(ts)
}

// IsActive returns true if the action has not reached a final state
func (ts TransferStatus) IsActive() bool {
	return ts == TransferStatusPending || ts == TransferStatusRunning
}

// IsFinished returns true if the action is in a final state (completed, failed, or rejected)
func (ts TransferStatus) IsFinished() bool {
	return ts == TransferStatusCompleted || ts == TransferStatusFailed || ts == TransferStatusRejected
}

// TransferKind tells uploads and downloads apart
type TransferKind string

const (
	TransferKindUpload   TransferKind = "upload"
	TransferKindDownload TransferKind = "download"
)
