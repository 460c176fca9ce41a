package model

import "testing"

func TestTransferStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TransferStatus
		expected bool
	}{
		{TransferStatusPending, true},
		{TransferStatusRunning, true},
		{TransferStatusCompleted, false},
		{TransferStatusFailed, false},
		{TransferStatusRejected, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TransferStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTransferStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TransferStatus
		expected bool
	}{
		{TransferStatusPending, false},
		{TransferStatusRunning, false},
		{TransferStatusCompleted, true},
		{TransferStatusFailed, true},
		{TransferStatusRejected, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TransferStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTransferStatus_String(t *testing.T) {
	status := TransferStatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("TransferStatus.String() = %s, expected %s", result, expected)
	}
}
