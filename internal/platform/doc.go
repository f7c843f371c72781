package platform

// Package platform contains OS and URL glue shared by the download pipeline:
// URL classification, filename sanitization, and filesystem helpers.
