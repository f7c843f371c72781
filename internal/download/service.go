package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ytget/bulkget/internal/model"
	"github.com/ytget/bulkget/internal/platform"
	"github.com/ytget/bulkget/internal/ytdlp"
)

// Precondition errors that abort a whole bulk call
var (
	// ErrNotInitialized means Init was not called or failed
	ErrNotInitialized = errors.New("downloader not initialized")

	// ErrNoVideos means the URL resolved to zero downloadable videos
	ErrNoVideos = errors.New("no videos found for the provided URL")
)

// retryBackoff separates consecutive attempts on the same video
const retryBackoff = 2 * time.Second

// Service orchestrates bulk downloads through the yt-dlp executable. One
// DownloadBulk call runs at a time per Service; the cumulative error log and
// the in-flight process registry survive across calls.
type Service struct {
	tool   *ytdlp.Tool
	events Events

	registry *registry
	backoff  time.Duration // delay between attempts on the same video

	mu          sync.Mutex
	errorLog    []model.ErrorRecord
	initialized bool
	version     string
}

// NewService creates a download service. binaryPath may be empty, in which
// case Init resolves yt-dlp from PATH.
func NewService(binaryPath string) *Service {
	return &Service{
		tool:     ytdlp.NewTool(binaryPath),
		registry: newRegistry(),
		backoff:  retryBackoff,
	}
}

// SetEvents installs the notification callbacks. Must be called before
// DownloadBulk; not safe to swap mid-run.
func (s *Service) SetEvents(events Events) {
	s.events = events
}

// Init resolves the yt-dlp binary and probes it for its version. Idempotent;
// repeat calls reuse the resolved binary.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		version := s.version
		s.mu.Unlock()
		s.emitInitialized(version)
		return nil
	}
	s.mu.Unlock()

	path, err := ytdlp.ResolveBinary(s.tool.Path())
	if err != nil {
		s.emitError(err)
		return err
	}

	tool := ytdlp.NewTool(path)
	version, err := tool.Version(ctx)
	if err != nil {
		err = fmt.Errorf("yt-dlp version probe failed: %w", err)
		s.emitError(err)
		return err
	}

	s.mu.Lock()
	s.tool = tool
	s.version = version
	s.initialized = true
	s.mu.Unlock()

	s.emitInitialized(version)
	return nil
}

// Version returns the yt-dlp version reported during Init
func (s *Service) Version() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// DownloadBulk resolves the URL into a video list and downloads every entry
// sequentially, then retries the failing subset within the MaxRetries budget.
// Per-video failures never abort the run (unless ContinueOnError is off);
// only precondition failures return an error.
func (s *Service) DownloadBulk(ctx context.Context, url string, opts model.DownloadOptions) (*model.BulkResult, error) {
	s.mu.Lock()
	initialized := s.initialized
	s.mu.Unlock()
	if !initialized {
		return nil, ErrNotInitialized
	}

	opts.Normalize()

	if err := platform.CreateDirectoryIfNotExists(opts.OutputDirectory); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	videos, err := s.resolveVideos(ctx, url)
	if err != nil {
		return nil, err
	}

	s.emitStatus(fmt.Sprintf("Found %d video(s) to download", len(videos)))

	result := &model.BulkResult{
		TotalVideos:     len(videos),
		OutputDirectory: opts.OutputDirectory,
	}

	failed := s.firstPass(ctx, videos, &opts, result)
	s.retryPass(ctx, failed, &opts, result)

	if len(result.Errors) > 0 {
		if path, err := writeErrorLog(result.Errors, opts.OutputDirectory); err != nil {
			s.emitError(fmt.Errorf("failed to write error log: %w", err))
		} else {
			s.emitErrorLogGenerated(path)
		}
	}

	s.emitDownloadComplete(result)
	return result, nil
}

// resolveVideos turns the URL into an ordered video list. Resolver failures
// surface as ErrNoVideos: the orchestrator treats unresolvable input as empty
// input, not as a crash.
func (s *Service) resolveVideos(ctx context.Context, url string) ([]*model.VideoInfo, error) {
	s.emitStatus("Fetching video information...")

	var videos []*model.VideoInfo
	switch platform.ClassifyURL(url).Kind {
	case model.LinkKindVideo:
		video, err := s.tool.VideoInfo(ctx, url)
		if err != nil {
			s.emitError(err)
			break
		}
		videos = []*model.VideoInfo{video}
	case model.LinkKindPlaylist:
		playlist, err := s.tool.PlaylistInfo(ctx, url)
		if err != nil {
			s.emitError(err)
			break
		}
		videos = playlist.Entries
	}

	if len(videos) == 0 {
		return nil, ErrNoVideos
	}
	return videos, nil
}

// firstPass downloads every video once, in source order, and returns the
// failing subset. Stops early on the first failure when ContinueOnError is
// off; the remaining videos are counted as skipped so the totals still add up.
func (s *Service) firstPass(ctx context.Context, videos []*model.VideoInfo, opts *model.DownloadOptions, result *model.BulkResult) []*model.VideoInfo {
	var failed []*model.VideoInfo

	for i, video := range videos {
		s.emitStatus(fmt.Sprintf("Downloading %d/%d: %s", i+1, len(videos), video.Title))

		res := s.fetchVideo(ctx, video, opts)
		if res.Success {
			result.Successful++
			s.emitVideoComplete(model.VideoCompleteEvent{
				Index: i + 1, Total: len(videos), Video: video, Success: true,
			})
			continue
		}

		result.Failed++
		failed = append(failed, video)
		result.Errors = append(result.Errors, model.BulkError{
			VideoID: video.ID,
			Title:   video.Title,
			Error:   res.Error,
		})
		s.emitVideoComplete(model.VideoCompleteEvent{
			Index: i + 1, Total: len(videos), Video: video, Success: false, Error: res.Error,
		})

		if !opts.ContinueOnError {
			result.Skipped = len(videos) - (i + 1)
			break
		}
	}

	return failed
}

// retryPass re-attempts the failing subset, one full pass per remaining retry
// in the budget. A fixed video leaves the subset and the result errors; the
// pass loop ends early once nothing fails.
func (s *Service) retryPass(ctx context.Context, failed []*model.VideoInfo, opts *model.DownloadOptions, result *model.BulkResult) {
	if len(failed) == 0 || opts.MaxRetries <= 1 {
		return
	}

	s.emitStatus(fmt.Sprintf("Retrying %d failed video(s)...", len(failed)))

	for attempt := 1; attempt < opts.MaxRetries; attempt++ {
		var stillFailing []*model.VideoInfo

		for _, video := range failed {
			s.emitStatus(fmt.Sprintf("Retry %d/%d: %s", attempt, opts.MaxRetries-1, video.Title))

			select {
			case <-time.After(s.backoff):
			case <-ctx.Done():
				return
			}

			res := s.fetchVideo(ctx, video, opts)
			if res.Success {
				result.Successful++
				result.Failed--
				result.RemoveError(video.ID)
				s.emitRetrySuccess(video, attempt)
			} else {
				stillFailing = append(stillFailing, video)
			}
		}

		failed = stillFailing
		if len(failed) == 0 {
			return
		}
	}
}

// CancelDownload signals the running download for the given video id.
// Returns false when nothing is downloading under that id. The pending
// outcome still settles as a failure through the executor.
func (s *Service) CancelDownload(videoID string) bool {
	return s.registry.cancel(videoID)
}

// CancelAllDownloads signals every running download in one sweep
func (s *Service) CancelAllDownloads() {
	s.registry.cancelAll()
}

// Stats reports the number of active downloads and accumulated error records
func (s *Service) Stats() (activeDownloads, totalErrors int) {
	s.mu.Lock()
	totalErrors = len(s.errorLog)
	s.mu.Unlock()
	return s.registry.active(), totalErrors
}

// ErrorLog returns a copy of the cumulative error records
func (s *Service) ErrorLog() []model.ErrorRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]model.ErrorRecord, len(s.errorLog))
	copy(records, s.errorLog)
	return records
}

// ClearErrorLog drops all accumulated error records
func (s *Service) ClearErrorLog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorLog = nil
}

// logError appends a timestamped record to the cumulative error log
func (s *Service) logError(videoID, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorLog = append(s.errorLog, model.ErrorRecord{
		Timestamp: time.Now().UTC(),
		VideoID:   videoID,
		Title:     title,
		Message:   message,
	})
}
