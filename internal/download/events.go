package download

import (
	"github.com/ytget/bulkget/internal/model"
)

// Events is the notification surface consumed by the host UI. Every field is
// optional; nil callbacks are skipped. Callbacks run synchronously on the
// downloading goroutine, so per-video ordering is guaranteed: zero or more
// Progress calls, then exactly one VideoComplete.
type Events struct {
	// Progress reports transfer state of the video currently downloading
	Progress func(model.ProgressEvent)

	// Status carries human readable phase descriptions
	Status func(string)

	// VideoComplete fires once per video in the first pass
	VideoComplete func(model.VideoCompleteEvent)

	// RetrySuccess fires when a retry pass fixes a previously failed video
	RetrySuccess func(video *model.VideoInfo, attempt int)

	// DownloadComplete fires once with the aggregated result
	DownloadComplete func(*model.BulkResult)

	// ErrorLogGenerated reports the path of the persisted error log
	ErrorLogGenerated func(path string)

	// Initialized reports the yt-dlp version after a successful Init
	Initialized func(version string)

	// Error reports non-fatal side-channel failures, e.g. an unwritable log
	Error func(error)
}

func (s *Service) emitProgress(e model.ProgressEvent) {
	if s.events.Progress != nil {
		s.events.Progress(e)
	}
}

func (s *Service) emitStatus(text string) {
	if s.events.Status != nil {
		s.events.Status(text)
	}
}

func (s *Service) emitVideoComplete(e model.VideoCompleteEvent) {
	if s.events.VideoComplete != nil {
		s.events.VideoComplete(e)
	}
}

func (s *Service) emitRetrySuccess(video *model.VideoInfo, attempt int) {
	if s.events.RetrySuccess != nil {
		s.events.RetrySuccess(video, attempt)
	}
}

func (s *Service) emitDownloadComplete(result *model.BulkResult) {
	if s.events.DownloadComplete != nil {
		s.events.DownloadComplete(result)
	}
}

func (s *Service) emitErrorLogGenerated(path string) {
	if s.events.ErrorLogGenerated != nil {
		s.events.ErrorLogGenerated(path)
	}
}

func (s *Service) emitInitialized(version string) {
	if s.events.Initialized != nil {
		s.events.Initialized(version)
	}
}

func (s *Service) emitError(err error) {
	if s.events.Error != nil {
		s.events.Error(err)
	}
}
