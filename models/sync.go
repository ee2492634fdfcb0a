package models

import "time"

// UploadResult is the per-entity outcome of a single or batch upload. Results
// are aligned 1:1 with the batch input order so the caller can selectively
// persist successes and surface failures. Expected per-item failures travel
// here, never as Go errors.
type UploadResult struct {
	LocalID  int64  `json:"local_id"`
	RemoteID string `json:"remote_id,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// SyncResult bundles the outcome of a full or quick sync pass: everything
// downloaded from the remote store plus the per-entity upload outcomes. A
// partially failed sync still produces a SyncResult describing exactly what
// succeeded; failed entities remain dirty and are safe to retry later.
type SyncResult struct {
	DownloadedBooks    []RemoteBook    `json:"downloaded_books"`
	DownloadedFormulas []RemoteFormula `json:"downloaded_formulas"`
	UploadedBooks      []UploadResult  `json:"uploaded_books"`
	UploadedFormulas   []UploadResult  `json:"uploaded_formulas"`
	SyncTimestamp      time.Time       `json:"sync_timestamp"`
}

// CountOutcomes returns how many of the given results succeeded and failed.
func CountOutcomes(results []UploadResult) (succeeded, failed int) {
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
