package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Filename sanitization limits
const (
	MaxFilenameLength = 200
)

// IllegalFilenameChars are characters rejected by at least one common
// filesystem and therefore replaced during sanitization
const IllegalFilenameChars = `<>:"/\|?*`

// CreateDirectoryIfNotExists creates the directory (and parents) if missing
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// SanitizeFilename makes a video title safe to use as a filename: illegal
// characters become underscores, whitespace runs collapse to a single space,
// and the result is trimmed and truncated. The exact rules matter for on-disk
// discoverability, keep them stable.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(IllegalFilenameChars, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}

	sanitized := strings.Join(strings.Fields(b.String()), " ")

	if runes := []rune(sanitized); len(runes) > MaxFilenameLength {
		sanitized = string(runes[:MaxFilenameLength])
	}
	return sanitized
}

// GetHomeDownloadsDir returns the user's Downloads directory
func GetHomeDownloadsDir() (string, error) {
	// Android apps must use the shared external Downloads directory
	isAndroid := runtime.GOOS == "android" ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != ""

	if isAndroid {
		return "/sdcard/Download", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads"), nil
}
