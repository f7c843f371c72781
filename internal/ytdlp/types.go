package ytdlp

// rawInfo mirrors the subset of yt-dlp's dump-single-json output the app
// consumes. For playlists the same shape nests once under Entries.
type rawInfo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	WebpageURL  string    `json:"webpage_url"`
	URL         string    `json:"url"`
	Duration    float64   `json:"duration"`
	Thumbnail   string    `json:"thumbnail"`
	Uploader    string    `json:"uploader"`
	UploadDate  string    `json:"upload_date"`
	ViewCount   int64     `json:"view_count"`
	Description string    `json:"description"`
	Format      string    `json:"format"`
	Filesize    int64     `json:"filesize"`
	Entries     []rawInfo `json:"entries"`
}
