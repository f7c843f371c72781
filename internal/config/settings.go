// Package config loads and saves application settings from a YAML file.
// Absent files yield defaults, so a fresh install works without any setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ytget/bulkget/internal/model"
	"github.com/ytget/bulkget/internal/platform"
)

// AppDirName holds the config and history files under the user config root
const AppDirName = "bulkget"

// Config file and database names
const (
	SettingsFilename  = "config.yaml"
	HistoryDBFilename = "history.db"
)

// Fallback download directory when the home directory cannot be determined
const FallbackDownloadDir = "/tmp/downloads"

// Settings is the persisted application configuration
type Settings struct {
	DownloadDirectory string `yaml:"download_directory"`
	Quality           string `yaml:"quality"`
	AudioOnly         bool   `yaml:"audio_only"`
	Subtitles         bool   `yaml:"subtitles"`
	MaxRetries        int    `yaml:"max_retries"`
	ContinueOnError   bool   `yaml:"continue_on_error"`
	YTDLPPath         string `yaml:"ytdlp_path"`
	HistoryDBPath     string `yaml:"history_db_path"`
}

// Default returns settings matching the documented option defaults
func Default() Settings {
	downloadDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		downloadDir = FallbackDownloadDir
	}
	return Settings{
		DownloadDirectory: downloadDir,
		MaxRetries:        model.DefaultMaxRetries,
		ContinueOnError:   true,
		HistoryDBPath:     defaultHistoryDBPath(),
	}
}

// DefaultPath returns the standard settings file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(FallbackDownloadDir, SettingsFilename)
	}
	return filepath.Join(configDir, AppDirName, SettingsFilename)
}

// Load reads settings from the given path. A missing file returns defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.MaxRetries < 1 {
		settings.MaxRetries = model.DefaultMaxRetries
	}
	return settings, nil
}

// Save writes the settings to the given path, creating parent directories
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), platform.DefaultDirPermissions); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options builds download options from the settings
func (s Settings) Options() model.DownloadOptions {
	return model.DownloadOptions{
		OutputDirectory: s.DownloadDirectory,
		Quality:         s.Quality,
		AudioOnly:       s.AudioOnly,
		Subtitles:       s.Subtitles,
		MaxRetries:      s.MaxRetries,
		ContinueOnError: s.ContinueOnError,
	}
}

func defaultHistoryDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(FallbackDownloadDir, HistoryDBFilename)
	}
	return filepath.Join(configDir, AppDirName, HistoryDBFilename)
}
