// Package devicesync implements the streamkit backend for paths on a
// tethered mobile device reachable through a device-synchronization channel.
//
// The backend itself holds no device logic; every operation forwards to a
// Transport obtained from a lazily established connection. The real channel
// is injected by registering a Dialer; a built-in in-memory transport serves
// as the default.
package devicesync

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/gobeaver/streamkit"
)

// Adapter provides the device-sync implementation of streamkit.Backend.
type Adapter struct {
	conn *Conn
}

// New creates a backend over the given device connection.
func New(conn *Conn) *Adapter {
	return &Adapter{conn: conn}
}

// Read implements streamkit.Backend
func (a *Adapter) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := a.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ReadAll implements streamkit.Backend
func (a *Adapter) ReadAll(ctx context.Context, path string) ([]byte, error) {
	t, err := a.conn.Transport(ctx)
	if err != nil {
		return nil, &streamkit.PathError{Op: "read", Path: path, Err: err}
	}

	data, err := t.Read(ctx, path)
	if err != nil {
		if errors.Is(err, streamkit.ErrNotExist) {
			return nil, &streamkit.PathError{Op: "read", Path: path, Err: streamkit.ErrNotExist}
		}
		return nil, &streamkit.PathError{Op: "read", Path: path, Err: err}
	}

	return data, nil
}

// Write implements streamkit.Backend
func (a *Adapter) Write(ctx context.Context, path string, content io.Reader, options ...streamkit.Option) error {
	t, err := a.conn.Transport(ctx)
	if err != nil {
		return &streamkit.PathError{Op: "write", Path: path, Err: err}
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return &streamkit.PathError{Op: "write", Path: path, Err: err}
	}

	if err := t.Write(ctx, path, data); err != nil {
		return &streamkit.PathError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// FileExists implements streamkit.Backend. Failure to confirm existence
// reports false rather than an error.
func (a *Adapter) FileExists(ctx context.Context, path string) (bool, error) {
	t, err := a.conn.Transport(ctx)
	if err != nil {
		return false, nil
	}

	exists, err := t.FileExists(ctx, path)
	if err != nil {
		return false, nil
	}

	return exists, nil
}

// CreateDir implements streamkit.Backend
func (a *Adapter) CreateDir(ctx context.Context, path string) error {
	t, err := a.conn.Transport(ctx)
	if err != nil {
		return &streamkit.PathError{Op: "createdir", Path: path, Err: err}
	}

	if err := t.CreateDir(ctx, path); err != nil {
		return &streamkit.PathError{Op: "createdir", Path: path, Err: err}
	}

	return nil
}

// List implements streamkit.CanList
func (a *Adapter) List(ctx context.Context, path string) ([]streamkit.FileInfo, error) {
	t, err := a.conn.Transport(ctx)
	if err != nil {
		return nil, &streamkit.PathError{Op: "list", Path: path, Err: err}
	}

	entries, err := t.List(ctx, path)
	if err != nil {
		if errors.Is(err, streamkit.ErrNotExist) {
			return nil, &streamkit.PathError{Op: "list", Path: path, Err: streamkit.ErrNotExist}
		}
		return nil, &streamkit.PathError{Op: "list", Path: path, Err: err}
	}

	return entries, nil
}

// Checksum implements streamkit.CanChecksum by reading the file back over
// the channel and hashing it here; the transport has no native hashing.
func (a *Adapter) Checksum(ctx context.Context, path string, algorithm streamkit.ChecksumAlgorithm) (string, error) {
	data, err := a.ReadAll(ctx, path)
	if err != nil {
		return "", err
	}

	checksum, err := streamkit.CalculateChecksum(bytes.NewReader(data), algorithm)
	if err != nil {
		return "", &streamkit.PathError{Op: "checksum", Path: path, Err: err}
	}

	return checksum, nil
}

// Ensure Adapter implements interfaces
var (
	_ streamkit.Backend     = (*Adapter)(nil)
	_ streamkit.CanList     = (*Adapter)(nil)
	_ streamkit.CanChecksum = (*Adapter)(nil)
)
