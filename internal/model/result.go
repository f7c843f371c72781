package model

import "time"

// DownloadResult is the terminal outcome of one download attempt
type DownloadResult struct {
	Success    bool
	VideoID    string
	Title      string
	OutputPath string // directory the file landed in, set on success
	Error      string // human readable, set on failure
}

// ErrorRecord is one entry of the cumulative error log
type ErrorRecord struct {
	Timestamp time.Time // UTC
	VideoID   string
	Title     string
	Message   string
}

// BulkError identifies one persistently failed video inside a BulkResult
type BulkError struct {
	VideoID string
	Title   string
	Error   string
}

// BulkResult summarizes a whole bulk download run.
// Successful + Failed + Skipped == TotalVideos once the run completes.
type BulkResult struct {
	TotalVideos     int
	Successful      int
	Failed          int
	Skipped         int
	Errors          []BulkError
	OutputDirectory string
}

// RemoveError drops the entry for the given video id, if present
func (r *BulkResult) RemoveError(videoID string) {
	filtered := r.Errors[:0]
	for _, e := range r.Errors {
		if e.VideoID != videoID {
			filtered = append(filtered, e)
		}
	}
	r.Errors = filtered
}
