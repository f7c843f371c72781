package model

// Package model defines domain data structures used across the app: video and
// playlist metadata, download options, per-video and bulk results, and status
// enums. Values produced by the metadata resolver are read-only once handed to
// the orchestrator.
