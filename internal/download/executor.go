package download

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ytget/bulkget/internal/model"
	"github.com/ytget/bulkget/internal/platform"
	"github.com/ytget/bulkget/internal/ytdlp"
)

// fetchVideo runs one download attempt through yt-dlp. It blocks until the
// process settles, streams progress events while active, and registers the
// running process for cancellation. Failures are recorded in the service
// error log before returning; they never propagate as Go errors.
func (s *Service) fetchVideo(ctx context.Context, video *model.VideoInfo, opts *model.DownloadOptions) model.DownloadResult {
	template := filepath.Join(opts.OutputDirectory, platform.SanitizeFilename(video.Title)+".%(ext)s")
	args := ytdlp.FetchArgs(video.URL, template, opts)

	var cancel context.CancelFunc
	if opts.ItemTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.ItemTimeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	cmd := exec.CommandContext(ctx, s.tool.Path(), args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return s.failVideo(video, fmt.Sprintf("failed to open yt-dlp output: %v", err))
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return s.failVideo(video, fmt.Sprintf("failed to start yt-dlp: %v", err))
	}

	s.registry.add(video.ID, cancel)
	defer s.registry.remove(video.ID)

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		event, ok := ytdlp.ParseProgress(scanner.Text())
		if !ok {
			continue
		}
		event.VideoID = video.ID
		event.Title = video.Title
		s.emitProgress(event)
	}

	if err := cmd.Wait(); err != nil {
		return s.failVideo(video, downloadErrorMessage(ctx, err, &stderr))
	}

	return model.DownloadResult{
		Success:    true,
		VideoID:    video.ID,
		Title:      video.Title,
		OutputPath: opts.OutputDirectory,
	}
}

// failVideo records the failure in the cumulative error log and builds the
// terminal outcome
func (s *Service) failVideo(video *model.VideoInfo, message string) model.DownloadResult {
	s.logError(video.ID, video.Title, message)
	return model.DownloadResult{
		Success: false,
		VideoID: video.ID,
		Title:   video.Title,
		Error:   message,
	}
}

// downloadErrorMessage turns a process failure into a human readable string
func downloadErrorMessage(ctx context.Context, err error, stderr *bytes.Buffer) string {
	switch ctx.Err() {
	case context.Canceled:
		return "download canceled"
	case context.DeadlineExceeded:
		return "download timed out"
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		message := fmt.Sprintf("Download failed with exit code %d", exitErr.ExitCode())
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			message = fmt.Sprintf("%s: %s", message, lastLine(detail))
		}
		return message
	}
	return err.Error()
}

// lastLine extracts the final stderr line, which is where yt-dlp puts the
// actual ERROR: text
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
