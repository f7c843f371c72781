package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ytget/bulkget/internal/config"
	"github.com/ytget/bulkget/internal/download"
	"github.com/ytget/bulkget/internal/history"
	"github.com/ytget/bulkget/internal/model"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	app := &cli.App{
		Name:    "bulkget",
		Usage:   "bulk download videos and playlists through yt-dlp",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "settings file path",
				Value: config.DefaultPath(),
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress progress output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "download",
				Usage:     "download a video or playlist URL; arguments after the URL are passed to yt-dlp verbatim",
				ArgsUsage: "<url> [extra yt-dlp args...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory"},
					&cli.StringFlag{Name: "quality", Usage: "yt-dlp format selector"},
					&cli.BoolFlag{Name: "audio-only", Usage: "download best audio-only stream"},
					&cli.BoolFlag{Name: "subs", Usage: "also download English subtitles"},
					&cli.IntFlag{Name: "retries", Usage: "total attempts per video", Value: model.DefaultMaxRetries},
					&cli.BoolFlag{Name: "no-continue", Usage: "stop at the first failed video"},
					&cli.DurationFlag{Name: "timeout", Usage: "per-video time limit (0 = none)"},
					&cli.StringFlag{Name: "yt-dlp", Usage: "path to the yt-dlp binary"},
					&cli.BoolFlag{Name: "no-history", Usage: "do not record this run"},
				},
				Action: downloadAction,
			},
			{
				Name:  "history",
				Usage: "inspect recorded download runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "show recent runs",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Usage: "maximum rows to show", Value: 20},
						},
						Action: historyListAction,
					},
					{
						Name:   "clear",
						Usage:  "delete all recorded runs",
						Action: historyClearAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func downloadAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	if c.NArg() < 1 {
		return cli.Exit("usage: bulkget download <url> [extra yt-dlp args...]", 1)
	}
	url := c.Args().First()
	customArgs := c.Args().Tail()

	settings, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	opts := settings.Options()
	if c.IsSet("out") {
		opts.OutputDirectory = c.String("out")
	}
	if c.IsSet("quality") {
		opts.Quality = c.String("quality")
	}
	if c.Bool("audio-only") {
		opts.AudioOnly = true
	}
	if c.Bool("subs") {
		opts.Subtitles = true
	}
	if c.IsSet("retries") {
		opts.MaxRetries = c.Int("retries")
	}
	if c.Bool("no-continue") {
		opts.ContinueOnError = false
	}
	opts.ItemTimeout = c.Duration("timeout")
	opts.CustomArgs = customArgs

	ytdlpPath := settings.YTDLPPath
	if c.IsSet("yt-dlp") {
		ytdlpPath = c.String("yt-dlp")
	}

	svc := download.NewService(ytdlpPath)
	svc.SetEvents(consoleEvents(c.Bool("quiet")))

	if err := svc.Init(c.Context); err != nil {
		logger.Error("initialization failed", "error", err)
		return err
	}

	startedAt := time.Now()
	result, err := svc.DownloadBulk(c.Context, url, opts)
	if err != nil {
		logger.Error("bulk download failed", "error", err, "url", url)
		return err
	}
	finishedAt := time.Now()

	printSummary(result)

	if !c.Bool("no-history") {
		if err := recordRun(settings.HistoryDBPath, url, result, startedAt, finishedAt); err != nil {
			logger.Error("failed to record run history", "error", err)
		}
	}

	if result.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func historyListAction(c *cli.Context) error {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	repo, err := history.Open(settings.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer repo.Close()

	runs, err := repo.List(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-20s %-8s %-8s %-8s %-8s %s\n", "Started", "Total", "Success", "Failed", "Skipped", "URL")
	fmt.Println(strings.Repeat("-", 90))
	for _, run := range runs {
		fmt.Printf("%-20s %-8d %-8d %-8d %-8d %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.TotalVideos, run.Successful, run.Failed, run.Skipped, run.URL,
		)
	}
	fmt.Printf("\nTotal: %d run(s)\n", len(runs))
	return nil
}

func historyClearAction(c *cli.Context) error {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	repo, err := history.Open(settings.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer repo.Close()

	if err := repo.Clear(); err != nil {
		return err
	}
	fmt.Println("History cleared")
	return nil
}

// consoleEvents renders orchestrator notifications to stderr so stdout stays
// reserved for the final summary
func consoleEvents(quiet bool) download.Events {
	if quiet {
		return download.Events{}
	}
	return download.Events{
		Status: func(text string) {
			fmt.Fprintln(os.Stderr, text)
		},
		Progress: func(e model.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "\r[%s] %.1f%% of %s at %s ETA %s   ",
				truncate(e.Title, 40), e.Percent, e.TotalSize, e.Speed, e.ETA)
		},
		VideoComplete: func(e model.VideoCompleteEvent) {
			fmt.Fprintln(os.Stderr)
			if e.Success {
				fmt.Fprintf(os.Stderr, "[%d/%d] done: %s\n", e.Index, e.Total, e.Video.Title)
			} else {
				fmt.Fprintf(os.Stderr, "[%d/%d] FAILED: %s (%s)\n", e.Index, e.Total, e.Video.Title, e.Error)
			}
		},
		RetrySuccess: func(video *model.VideoInfo, attempt int) {
			fmt.Fprintf(os.Stderr, "retry %d fixed: %s\n", attempt, video.Title)
		},
		ErrorLogGenerated: func(path string) {
			fmt.Fprintf(os.Stderr, "Error log saved to: %s\n", path)
		},
		Initialized: func(version string) {
			fmt.Fprintf(os.Stderr, "yt-dlp version: %s\n", version)
		},
		Error: func(err error) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		},
	}
}

func printSummary(result *model.BulkResult) {
	fmt.Printf("Download completed! Success: %d, Failed: %d", result.Successful, result.Failed)
	if result.Skipped > 0 {
		fmt.Printf(", Skipped: %d", result.Skipped)
	}
	fmt.Println()
	if result.Failed > 0 {
		fmt.Printf("Check %s in the output folder\n", download.ErrorLogFilename)
	}
	fmt.Printf("Saved to: %s\n", result.OutputDirectory)
}

func recordRun(dbPath, url string, result *model.BulkResult, startedAt, finishedAt time.Time) error {
	repo, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	_, err = repo.Record(url, result, startedAt, finishedAt)
	return err
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
