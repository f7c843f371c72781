package model

// LinkKind classifies what a pasted URL points at
type LinkKind string

const (
	// LinkKindVideo means the URL addresses a single video
	LinkKindVideo LinkKind = "video"

	// LinkKindPlaylist means the URL addresses a whole playlist
	LinkKindPlaylist LinkKind = "playlist"

	// LinkKindUnknown means the URL was not recognized
	LinkKindUnknown LinkKind = "unknown"
)

// String returns the string representation of LinkKind
func (lk LinkKind) String() string {
	return string(lk)
}

// LinkRef is the result of classifying a URL: the kind of resource it
// addresses plus the extracted video or playlist identifier. Derived purely
// from URL syntax, no network access.
type LinkRef struct {
	Kind LinkKind
	ID   string
}

// IsKnown returns true if the link was recognized as a video or playlist
func (lr LinkRef) IsKnown() bool {
	return lr.Kind == LinkKindVideo || lr.Kind == LinkKindPlaylist
}
