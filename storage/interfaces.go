package storage

import "context"

// FondStore persists named artifacts with optimistic revision control.
// Implementations must be thread-safe and support concurrent access.
type FondStore interface {
	// Get retrieves an artifact and its current revision token by path.
	// Returns ErrNotFound if no artifact exists at the path.
	Get(ctx context.Context, path string) (content []byte, revision string, err error)

	// Put writes an artifact at the path. revision must be the token the
	// caller last read, or empty to create a new artifact. message is a
	// human-readable description of the change; backends without change
	// history may ignore it.
	// Returns the new revision token. Returns ErrRevisionConflict when the
	// stored revision no longer matches, and ErrAlreadyExists on a create
	// of an existing path.
	Put(ctx context.Context, path string, content []byte, revision, message string) (newRevision string, err error)

	// Close closes the storage backend and releases resources.
	Close() error
}
