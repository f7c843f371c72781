package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ytget/bulkget/internal/model"
)

// ErrorLogFilename is the fixed artifact name inside the output directory.
// Each run overwrites the previous log.
const ErrorLogFilename = "error_log.txt"

// writeErrorLog serializes the persistent failures of one run into a human
// readable report next to the downloaded files. Returns the artifact path.
func writeErrorLog(errors []model.BulkError, outputDir string) (string, error) {
	logPath := filepath.Join(outputDir, ErrorLogFilename)

	var b strings.Builder
	b.WriteString("YouTube Downloader Error Log\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", time.Now().UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Total Errors: %d\n", len(errors)))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, e := range errors {
		b.WriteString(fmt.Sprintf("Video ID: %s\n", e.VideoID))
		b.WriteString(fmt.Sprintf("Title: %s\n", e.Title))
		b.WriteString(fmt.Sprintf("Error: %s\n", e.Error))
		b.WriteString(strings.Repeat("=", 30) + "\n\n")
	}

	b.WriteString("\nInstructions:\n")
	b.WriteString("1. Copy the error messages above\n")
	b.WriteString("2. Report these errors to the development team\n")
	b.WriteString("3. Include the Video ID and error message for each failed download\n")

	if err := os.WriteFile(logPath, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return logPath, nil
}
