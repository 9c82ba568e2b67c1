package streamkit

import (
	"context"
	"io"
	"time"
)

// FileInfo represents file/directory metadata
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Backend is the capability set every storage kind implements. A backend is
// selected once per stream from the path's Kind and never changes for that
// stream's lifetime.
type Backend interface {
	// Read returns a stream for reading file content.
	// Fails with ErrNotExist if the target cannot be opened for reading.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// ReadAll reads the entire file into memory.
	ReadAll(ctx context.Context, path string) ([]byte, error)

	// Write creates or overwrites the file at path with the reader's
	// content. Parent directories are not created implicitly; use
	// EnsureDir first.
	Write(ctx context.Context, path string, r io.Reader, opts ...Option) error

	// FileExists checks if a file exists at path. It reports false rather
	// than failing when existence cannot be confirmed.
	FileExists(ctx context.Context, path string) (bool, error)

	// CreateDir creates a single directory level. Creating a directory
	// that already exists is success.
	CreateDir(ctx context.Context, path string) error
}

// ============================================================================
// Optional Capability Interfaces
// ============================================================================
// Backends may expose optional capabilities. Use type assertion to check:
//
//	if lister, ok := b.(CanList); ok {
//	    entries, err := lister.List(ctx, dir)
//	}

// CanList indicates the backend can enumerate directory contents.
type CanList interface {
	// List returns the immediate entries of the directory at path.
	List(ctx context.Context, path string) ([]FileInfo, error)
}

// CanDelete indicates the backend can remove files.
type CanDelete interface {
	Delete(ctx context.Context, path string) error
}

// CanChecksum indicates the backend supports integrity verification,
// used to confirm that transferred files arrived intact.
type CanChecksum interface {
	// Checksum calculates the checksum of a file using the specified
	// algorithm. Returns the checksum as a hex-encoded string.
	Checksum(ctx context.Context, path string, algorithm ChecksumAlgorithm) (string, error)
}
