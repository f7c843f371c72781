package ytdlp

import (
	"regexp"
	"strconv"

	"github.com/ytget/bulkget/internal/model"
)

// Progress lines as printed by yt-dlp with --newline:
//
//	[download]  42.7% of 10.55MiB at 1.25MiB/s ETA 00:05
//	[download] 100% of ~250.00KiB in 00:00:01 at 300.12KiB/s
var (
	progressLineRegex = regexp.MustCompile(`^\[download\]\s+(\d+(?:\.\d+)?)%`)
	totalSizeRegex    = regexp.MustCompile(`\bof\s+~?\s*([\d.]+\w+)`)
	speedRegex        = regexp.MustCompile(`\bat\s+([\d.]+\w+/s)`)
	etaRegex          = regexp.MustCompile(`\bETA\s+([0-9:]+)`)
)

// ParseProgress extracts a progress snapshot from one line of yt-dlp output.
// Returns false for lines that are not download progress. Video identity is
// left for the caller to fill in.
func ParseProgress(line string) (model.ProgressEvent, bool) {
	m := progressLineRegex.FindStringSubmatch(line)
	if m == nil {
		return model.ProgressEvent{}, false
	}

	percent, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.ProgressEvent{}, false
	}

	event := model.ProgressEvent{
		Percent:    percent,
		Speed:      model.UnknownSpeed,
		ETA:        model.UnknownETA,
		TotalSize:  model.UnknownTotalSize,
		Downloaded: model.UnknownDownloaded,
		Status:     model.DownloadStatusDownloading,
	}

	if sm := totalSizeRegex.FindStringSubmatch(line); sm != nil {
		event.TotalSize = sm[1]
	}
	if sm := speedRegex.FindStringSubmatch(line); sm != nil {
		event.Speed = sm[1]
	}
	if sm := etaRegex.FindStringSubmatch(line); sm != nil {
		event.ETA = sm[1]
	}
	return event, true
}
