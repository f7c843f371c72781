package download

// Package download implements the bulk download pipeline built on top of the
// yt-dlp executable. It classifies the input URL, resolves the video list,
// runs sequential downloads with a bounded retry budget, propagates progress
// to the host UI through callbacks, and persists an error log for failures.
