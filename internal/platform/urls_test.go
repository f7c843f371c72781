package platform

import (
	"testing"

	"github.com/ytget/bulkget/internal/model"
)

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		kind model.LinkKind
		id   string
	}{
		{"short link", "https://youtu.be/ABC123", model.LinkKindVideo, "ABC123"},
		{"watch URL", "https://www.youtube.com/watch?v=XYZ", model.LinkKindVideo, "XYZ"},
		{"watch URL bare host", "https://youtube.com/watch?v=XYZ", model.LinkKindVideo, "XYZ"},
		{"mobile watch URL", "https://m.youtube.com/watch?v=XYZ", model.LinkKindVideo, "XYZ"},
		{"playlist URL", "https://www.youtube.com/playlist?list=PL1", model.LinkKindPlaylist, "PL1"},
		{"watch with extra params", "https://www.youtube.com/watch?v=abc&t=42s", model.LinkKindVideo, "abc"},
		{"foreign host", "https://example.com/watch?v=X", model.LinkKindUnknown, ""},
		{"short link without path", "https://youtu.be/", model.LinkKindUnknown, ""},
		{"watch without id", "https://www.youtube.com/watch", model.LinkKindUnknown, ""},
		{"playlist without id", "https://www.youtube.com/playlist", model.LinkKindUnknown, ""},
		{"channel page", "https://www.youtube.com/@somechannel", model.LinkKindUnknown, ""},
		{"malformed input", "://not a url", model.LinkKindUnknown, ""},
		{"empty input", "", model.LinkKindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ClassifyURL(tt.url)
			if ref.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, ref.Kind)
			}
			if ref.ID != tt.id {
				t.Errorf("Expected id %q, got %q", tt.id, ref.ID)
			}
		})
	}
}

func TestClassifyURLNeverPanics(t *testing.T) {
	inputs := []string{"youtu.be/abc", "http://", "https://www.youtube.com", "watch?v=x"}
	for _, input := range inputs {
		ref := ClassifyURL(input)
		if ref.IsKnown() {
			t.Errorf("Expected %q to be unrecognized, got %s", input, ref.Kind)
		}
	}
}
