package model

import "fmt"

// State is a snapshot of the transfer window state
type State struct {
	File       *SelectedFile
	Outcome    string // server message of the last successful upload
	TargetName string // file name typed for download
	Error      string // last failure of either action
	Busy       bool   // an action is in flight
}

// HasFile reports whether a file is selected
func (s State) HasFile() bool {
	return s.File != nil
}

// FileLabel returns the selected file name with its size, or "" if none
func (s State) FileLabel() string {
	if s.File == nil {
		return ""
	}
	if s.File.Size < 0 {
		return s.File.Name
	}
	return fmt.Sprintf("%s (%s)", s.File.Name, FormatSize(s.File.Size))
}

// FormatSize returns a human readable byte count
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
