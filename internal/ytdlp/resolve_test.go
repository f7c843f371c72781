package ytdlp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveBinaryConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yt-dlp")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	resolved, err := ResolveBinary(path)
	if err != nil {
		t.Fatalf("ResolveBinary() error = %v", err)
	}
	if resolved != path {
		t.Errorf("Expected %q, got %q", path, resolved)
	}
}

func TestResolveBinaryMissingConfiguredPath(t *testing.T) {
	if _, err := ResolveBinary(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected error for missing configured path, got nil")
	}
}

func TestResolveBinaryDirectory(t *testing.T) {
	if _, err := ResolveBinary(t.TempDir()); err == nil {
		t.Fatal("Expected error for directory path, got nil")
	}
}
