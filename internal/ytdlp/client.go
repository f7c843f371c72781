package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ytget/bulkget/internal/model"
)

// Default metadata placeholders, used instead of failing on sparse entries
const (
	UnknownTitle    = "Unknown Title"
	UnknownPlaylist = "Unknown Playlist"
	UnknownUploader = "Unknown Uploader"
)

// VideoURLTemplate rebuilds a watch URL from a bare video id
const VideoURLTemplate = "https://www.youtube.com/watch?v=%s"

// Tool invokes a resolved yt-dlp binary
type Tool struct {
	path string
}

// NewTool creates a Tool around the given executable path. An empty path
// falls back to the default binary name.
func NewTool(path string) *Tool {
	if path == "" {
		path = DefaultBinaryName
	}
	return &Tool{path: path}
}

// Path returns the executable path the tool invokes
func (t *Tool) Path() string {
	return t.path
}

// Version runs yt-dlp --version and returns the trimmed version string.
// Used as the health probe during initialization.
func (t *Tool) Version(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

// VideoInfo fetches metadata for a single video without downloading media
func (t *Tool) VideoInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	out, err := t.run(ctx, "--dump-single-json", "--no-warnings", "--no-playlist", url)
	if err != nil {
		return nil, err
	}

	var raw rawInfo
	if err := json.Unmarshal(out.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("yt-dlp returned no video id for %s", url)
	}

	video := raw.toVideoInfo()
	if video.URL == "" {
		video.URL = url
	}
	return video, nil
}

// PlaylistInfo fetches playlist metadata and its entry list without
// downloading media. Entries lacking an id are dropped; missing titles and
// uploaders get placeholder text instead of failing the whole playlist.
func (t *Tool) PlaylistInfo(ctx context.Context, url string) (*model.Playlist, error) {
	out, err := t.run(ctx, "--dump-single-json", "--no-warnings", "--flat-playlist", url)
	if err != nil {
		return nil, err
	}

	var raw rawInfo
	if err := json.Unmarshal(out.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	if raw.Entries == nil {
		return nil, fmt.Errorf("no playlist entries in yt-dlp output for %s", url)
	}

	entries := make([]*model.VideoInfo, 0, len(raw.Entries))
	for _, entry := range raw.Entries {
		if entry.ID == "" {
			continue
		}
		video := entry.toVideoInfo()
		if video.URL == "" {
			video.URL = fmt.Sprintf(VideoURLTemplate, entry.ID)
		}
		entries = append(entries, video)
	}

	playlist := &model.Playlist{
		ID:       raw.ID,
		Title:    raw.Title,
		Uploader: raw.Uploader,
		Entries:  entries,
	}
	if playlist.Title == "" {
		playlist.Title = UnknownPlaylist
	}
	if playlist.Uploader == "" {
		playlist.Uploader = UnknownUploader
	}
	return playlist, nil
}

// run executes the binary and returns stdout, wrapping stderr into the error
func (t *Tool) run(ctx context.Context, args ...string) (*bytes.Buffer, error) {
	cmd := exec.CommandContext(ctx, t.path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return &stdout, nil
}

func (r rawInfo) toVideoInfo() *model.VideoInfo {
	title := r.Title
	if title == "" {
		title = UnknownTitle
	}
	url := r.WebpageURL
	if url == "" {
		url = r.URL
	}
	return &model.VideoInfo{
		ID:          r.ID,
		Title:       title,
		URL:         url,
		Duration:    r.Duration,
		Thumbnail:   r.Thumbnail,
		Uploader:    r.Uploader,
		UploadDate:  r.UploadDate,
		ViewCount:   r.ViewCount,
		Description: r.Description,
		Format:      r.Format,
		Filesize:    r.Filesize,
	}
}
