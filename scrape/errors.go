package scrape

import "errors"

var (
	// ErrEmptyExtraction indicates that the archive pages yielded no cases.
	// The run is aborted so a scraping regression cannot erase a previously
	// good artifact.
	ErrEmptyExtraction = errors.New("scrape: no cases extracted")

	// ErrJobRunning indicates that a sync run is already in progress.
	ErrJobRunning = errors.New("scrape: sync already running")

	// ErrMissingRepo indicates that the GitHub repository is not configured.
	ErrMissingRepo = errors.New("scrape: github repository is not configured")

	// ErrBadRepo indicates a repository reference that is not owner/name.
	ErrBadRepo = errors.New("scrape: github repository must be owner/name")
)
