package platform

import (
	"net/url"
	"strings"

	"github.com/ytget/bulkget/internal/model"
)

// Recognized YouTube hostnames
const (
	HostYouTube       = "youtube.com"
	HostYouTubeWWW    = "www.youtube.com"
	HostYouTubeMobile = "m.youtube.com"
	HostShortLink     = "youtu.be"
)

// Path and query components carrying the identifier
const (
	WatchPath     = "/watch"
	PlaylistPath  = "/playlist"
	VideoParam    = "v"
	PlaylistParam = "list"
)

// ClassifyURL determines whether a URL addresses a single video or a whole
// playlist and extracts the identifier. Malformed or foreign URLs yield
// LinkKindUnknown, never an error.
func ClassifyURL(raw string) model.LinkRef {
	unknown := model.LinkRef{Kind: model.LinkKindUnknown}

	u, err := url.Parse(raw)
	if err != nil {
		return unknown
	}

	host := strings.ToLower(u.Hostname())
	switch host {
	case HostYouTube, HostYouTubeWWW, HostYouTubeMobile, HostShortLink:
	default:
		return unknown
	}

	// Short links carry the video id as the path
	if host == HostShortLink {
		id := strings.TrimPrefix(u.Path, "/")
		if id == "" {
			return unknown
		}
		return model.LinkRef{Kind: model.LinkKindVideo, ID: id}
	}

	switch u.Path {
	case WatchPath:
		if id := u.Query().Get(VideoParam); id != "" {
			return model.LinkRef{Kind: model.LinkKindVideo, ID: id}
		}
	case PlaylistPath:
		if id := u.Query().Get(PlaylistParam); id != "" {
			return model.LinkRef{Kind: model.LinkKindPlaylist, ID: id}
		}
	}

	return unknown
}
