package ytdlp

// Package ytdlp wraps the bundled yt-dlp executable: binary resolution,
// metadata extraction in dump-json mode, download argument construction, and
// parsing of the tool's progress output. All extraction and media retrieval
// happens inside the external process; this package only drives it.
