package ytdlp

import (
	"github.com/ytget/bulkget/internal/model"
)

// Subtitle flags requested when DownloadOptions.Subtitles is set
var subtitleArgs = []string{"--write-subs", "--write-auto-subs", "--sub-lang", "en"}

// FetchArgs builds the argument list for one download invocation. The output
// template leaves extension negotiation to yt-dlp via %(ext)s. CustomArgs are
// appended verbatim at the end: a caller-controlled escape hatch that is not
// validated here.
func FetchArgs(url, outputTemplate string, opts *model.DownloadOptions) []string {
	args := []string{
		url,
		"-o", outputTemplate,
		"--newline",
		"--no-warnings",
		"-f", opts.FormatSelector(),
	}

	if opts.Subtitles {
		args = append(args, subtitleArgs...)
	}

	args = append(args, opts.CustomArgs...)
	return args
}
