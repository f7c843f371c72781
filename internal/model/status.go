package model

// DownloadStatus represents the status of a single video download
type DownloadStatus string

const (
	// DownloadStatusDownloading means bytes are being transferred
	DownloadStatusDownloading DownloadStatus = "downloading"

	// DownloadStatusFinished means the video download completed successfully
	DownloadStatusFinished DownloadStatus = "finished"

	// DownloadStatusError means the video download failed
	DownloadStatusError DownloadStatus = "error"

	// DownloadStatusSkipped means the video was never attempted because the
	// run stopped early
	DownloadStatusSkipped DownloadStatus = "skipped"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsTerminal returns true if the status is a final state
func (ds DownloadStatus) IsTerminal() bool {
	return ds == DownloadStatusFinished || ds == DownloadStatusError || ds == DownloadStatusSkipped
}
