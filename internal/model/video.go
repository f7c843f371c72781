package model

// VideoInfo describes a single downloadable video as reported by yt-dlp's
// metadata mode. All fields except ID, Title and URL are best-effort and may
// be zero when the source does not report them.
type VideoInfo struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Duration    float64 `json:"duration,omitempty"` // seconds
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Uploader    string  `json:"uploader,omitempty"`
	UploadDate  string  `json:"upload_date,omitempty"` // YYYYMMDD
	ViewCount   int64   `json:"view_count,omitempty"`
	Description string  `json:"description,omitempty"`
	Format      string  `json:"format,omitempty"`
	Filesize    int64   `json:"filesize,omitempty"`
}

// Playlist represents a resolved playlist: its own metadata plus the ordered
// entries. Entry order follows source order and drives progress numbering.
type Playlist struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Uploader string       `json:"uploader"`
	Entries  []*VideoInfo `json:"entries"`
}
