package ytdlp

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultBinaryName is looked up on PATH when no explicit path is configured
const DefaultBinaryName = "yt-dlp"

// ResolveBinary returns an absolute path to a usable yt-dlp executable. An
// explicitly configured path wins; otherwise PATH is searched. The result is
// stable across calls, callers may cache it.
func ResolveBinary(configuredPath string) (string, error) {
	if configuredPath != "" {
		info, err := os.Stat(configuredPath)
		if err != nil {
			return "", fmt.Errorf("configured yt-dlp path is not usable: %w", err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("configured yt-dlp path is a directory: %s", configuredPath)
		}
		return configuredPath, nil
	}

	path, err := exec.LookPath(DefaultBinaryName)
	if err != nil {
		return "", fmt.Errorf("yt-dlp not found on PATH: %w", err)
	}
	return path, nil
}
