package model

import "testing"

func TestRemoveError(t *testing.T) {
	result := &BulkResult{
		Errors: []BulkError{
			{VideoID: "a", Title: "A"},
			{VideoID: "b", Title: "B"},
			{VideoID: "c", Title: "C"},
		},
	}

	result.RemoveError("b")

	if len(result.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(result.Errors))
	}
	if result.Errors[0].VideoID != "a" || result.Errors[1].VideoID != "c" {
		t.Errorf("Unexpected remaining errors: %+v", result.Errors)
	}

	// Removing an absent id is a no-op
	result.RemoveError("missing")
	if len(result.Errors) != 2 {
		t.Errorf("Expected unchanged errors, got %d", len(result.Errors))
	}
}

func TestLinkRefIsKnown(t *testing.T) {
	if (LinkRef{Kind: LinkKindUnknown}).IsKnown() {
		t.Error("Expected unknown link not to be known")
	}
	if !(LinkRef{Kind: LinkKindVideo, ID: "x"}).IsKnown() {
		t.Error("Expected video link to be known")
	}
	if !(LinkRef{Kind: LinkKindPlaylist, ID: "x"}).IsKnown() {
		t.Error("Expected playlist link to be known")
	}
}

func TestDownloadStatusIsTerminal(t *testing.T) {
	terminal := []DownloadStatus{DownloadStatusFinished, DownloadStatusError, DownloadStatusSkipped}
	for _, status := range terminal {
		if !status.IsTerminal() {
			t.Errorf("Expected %s to be terminal", status)
		}
	}
	if DownloadStatusDownloading.IsTerminal() {
		t.Error("Expected downloading not to be terminal")
	}
}
