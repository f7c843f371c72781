package model

// Placeholder texts used when yt-dlp does not report a value
const (
	UnknownSpeed      = "0B/s"
	UnknownETA        = "Unknown"
	UnknownTotalSize  = "Unknown"
	UnknownDownloaded = "0B"
)

// ProgressEvent is a transient snapshot of one video's transfer state. Many
// are emitted per video; none are retained after the run.
type ProgressEvent struct {
	VideoID    string
	Title      string
	Percent    float64 // 0 to 100
	Speed      string  // human readable, e.g. "1.25MiB/s"
	ETA        string  // human readable, e.g. "00:35"
	TotalSize  string  // human readable, e.g. "10.55MiB"
	Downloaded string  // human readable bytes transferred
	Status     DownloadStatus
}

// VideoCompleteEvent reports the terminal outcome of one video within a bulk
// run. Index is 1-based and follows source order.
type VideoCompleteEvent struct {
	Index   int
	Total   int
	Video   *VideoInfo
	Success bool
	Error   string
}
