// Package local implements the streamkit backend for local filesystem and
// UNC network paths.
package local

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/gobeaver/streamkit"
)

// chdirMu serializes the change-directory/restore sequence in Read. The
// working directory is process-wide state, so the whole sequence is a
// critical section.
var chdirMu sync.Mutex

// Adapter provides the local filesystem implementation of streamkit.Backend.
// UNC paths are served here too; the operating system resolves the share.
type Adapter struct{}

// New creates a new local filesystem adapter
func New() *Adapter {
	return &Adapter{}
}

// Read implements streamkit.Backend.
//
// When the path has a containing directory, the process working directory is
// changed into it and the bare file name opened there, so relative components
// resolve the same way the legacy toolchain resolved them. The previous
// working directory is restored unconditionally before returning, on failure
// included.
func (a *Adapter) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dir, file := streamkit.Split(path)
	if dir == "" {
		return a.open(path, path)
	}

	chdirMu.Lock()
	defer chdirMu.Unlock()

	prev, err := os.Getwd()
	if err != nil {
		return nil, &streamkit.PathError{Op: "read", Path: path, Err: err}
	}
	if err := os.Chdir(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, &streamkit.PathError{Op: "read", Path: path, Err: streamkit.ErrNotExist}
		}
		return nil, &streamkit.PathError{Op: "read", Path: path, Err: err}
	}
	defer os.Chdir(prev) //nolint:errcheck // restore is best effort

	return a.open(path, file)
}

func (a *Adapter) open(path, name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &streamkit.PathError{Op: "read", Path: path, Err: streamkit.ErrNotExist}
		}
		return nil, &streamkit.PathError{Op: "read", Path: path, Err: err}
	}
	return f, nil
}

// ReadAll implements streamkit.Backend
func (a *Adapter) ReadAll(ctx context.Context, path string) ([]byte, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &streamkit.PathError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// Write implements streamkit.Backend. The target is created or overwritten;
// missing parent directories are not created here, that is EnsureDir's job.
func (a *Adapter) Write(ctx context.Context, path string, content io.Reader, options ...streamkit.Option) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	f, err := os.Create(path)
	if err != nil {
		return &streamkit.PathError{Op: "write", Path: path, Err: err}
	}

	_, err = io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &streamkit.PathError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// FileExists implements streamkit.Backend. Existence means the path can be
// opened for reading and is not a directory; any failure to confirm reports
// false rather than an error.
func (a *Adapter) FileExists(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, nil
	}

	return !info.IsDir(), nil
}

// CreateDir implements streamkit.Backend. A single directory level is
// created; an already existing directory is success.
func (a *Adapter) CreateDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.Mkdir(path, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return &streamkit.PathError{Op: "createdir", Path: path, Err: err}
	}

	return nil
}

// Delete implements streamkit.CanDelete
func (a *Adapter) Delete(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &streamkit.PathError{Op: "delete", Path: path, Err: streamkit.ErrNotExist}
		}
		return &streamkit.PathError{Op: "delete", Path: path, Err: err}
	}

	return nil
}

// List implements streamkit.CanList
func (a *Adapter) List(ctx context.Context, path string) ([]streamkit.FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &streamkit.PathError{Op: "list", Path: path, Err: streamkit.ErrNotExist}
		}
		return nil, &streamkit.PathError{Op: "list", Path: path, Err: err}
	}

	files := make([]streamkit.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, streamkit.FileInfo{
			Name:    entry.Name(),
			Path:    path + string(os.PathSeparator) + entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			IsDir:   entry.IsDir(),
		})
	}

	return files, nil
}

// Checksum implements streamkit.CanChecksum
func (a *Adapter) Checksum(ctx context.Context, path string, algorithm streamkit.ChecksumAlgorithm) (string, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	checksum, err := streamkit.CalculateChecksum(rc, algorithm)
	if err != nil {
		return "", &streamkit.PathError{Op: "checksum", Path: path, Err: err}
	}

	return checksum, nil
}

// Ensure Adapter implements interfaces
var (
	_ streamkit.Backend     = (*Adapter)(nil)
	_ streamkit.CanList     = (*Adapter)(nil)
	_ streamkit.CanDelete   = (*Adapter)(nil)
	_ streamkit.CanChecksum = (*Adapter)(nil)
)
