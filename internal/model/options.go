package model

import "time"

// Format selectors passed to yt-dlp
const (
	FormatBestAudio  = "bestaudio[ext=m4a]/bestaudio"
	FormatDefault720 = "best[height<=720]/best"
)

// DefaultMaxRetries is the total attempt budget per video. 1 means a single
// attempt with no retry passes.
const DefaultMaxRetries = 1

// DownloadOptions configures one bulk download run
type DownloadOptions struct {
	OutputDirectory string        // required, created if missing
	Quality         string        // yt-dlp format selector, empty = best capped at 720p
	AudioOnly       bool          // select best audio-only stream instead of Quality
	Subtitles       bool          // also fetch English subtitles
	MaxRetries      int           // total attempts per video, minimum 1
	ContinueOnError bool          // keep going after a failed video
	CustomArgs      []string      // extra yt-dlp arguments, appended verbatim
	ItemTimeout     time.Duration // per-video fetch bound, 0 = none
}

// DefaultDownloadOptions returns options with the documented defaults applied
func DefaultDownloadOptions(outputDirectory string) DownloadOptions {
	return DownloadOptions{
		OutputDirectory: outputDirectory,
		MaxRetries:      DefaultMaxRetries,
		ContinueOnError: true,
	}
}

// Normalize clamps values into their valid ranges
func (o *DownloadOptions) Normalize() {
	if o.MaxRetries < 1 {
		o.MaxRetries = DefaultMaxRetries
	}
}

// FormatSelector returns the yt-dlp format selector implied by the options
func (o *DownloadOptions) FormatSelector() string {
	if o.AudioOnly {
		return FormatBestAudio
	}
	if o.Quality != "" {
		return o.Quality
	}
	return FormatDefault720
}
