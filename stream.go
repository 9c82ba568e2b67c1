package streamkit

import (
	"bytes"
	"context"
	"io"
)

// Reader is a fully materialized read stream. Opening it classifies the path,
// selects the owning backend and reads the whole target into an in-memory
// buffer, so construction either succeeds completely or fails with no
// observable side effect.
type Reader struct {
	name string
	data []byte
	r    *bytes.Reader
}

// Open opens the file at path for buffered reading.
func Open(ctx context.Context, path string) (*Reader, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	b, err := backendFor(Classify(path))
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	data, err := b.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}

	if cfg.MaxStreamSize > 0 && int64(len(data)) > cfg.MaxStreamSize {
		return nil, &PathError{Op: "open", Path: path, Err: ErrInvalidSize}
	}

	return &Reader{
		name: path,
		data: data,
		r:    bytes.NewReader(data),
	}, nil
}

// Read implements io.Reader over the buffered content.
func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Bytes returns the buffered file content. The slice is shared with the
// reader; callers must not modify it.
func (r *Reader) Bytes() []byte {
	return r.data
}

// Size returns the buffered content length in bytes.
func (r *Reader) Size() int64 {
	return int64(len(r.data))
}

// Name returns the path the stream was opened for.
func (r *Reader) Name() string {
	return r.name
}

// Close implements io.Closer. The buffer is in memory, so Close never fails.
func (r *Reader) Close() error {
	return nil
}

// Writer is a buffered write stream. Writes accumulate in memory and are
// committed to the owning backend exactly once when Close is called, so a
// failed transfer is reported from Close rather than lost in teardown.
type Writer struct {
	ctx    context.Context
	b      Backend
	name   string
	buf    bytes.Buffer
	opts   []Option
	closed bool
}

// Create opens the file at path for buffered writing. The backend is selected
// here and fixed for the writer's lifetime; the context is retained and used
// for the flush in Close.
func Create(ctx context.Context, path string, opts ...Option) (*Writer, error) {
	b, err := backendFor(Classify(path))
	if err != nil {
		return nil, &PathError{Op: "create", Path: path, Err: err}
	}

	return &Writer{
		ctx:  ctx,
		b:    b,
		name: path,
		opts: opts,
	}, nil
}

// Write implements io.Writer, appending to the in-memory buffer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, &PathError{Op: "write", Path: w.name, Err: ErrClosed}
	}
	return w.buf.Write(p)
}

// WriteString appends a string to the in-memory buffer.
func (w *Writer) WriteString(s string) (int, error) {
	if w.closed {
		return 0, &PathError{Op: "write", Path: w.name, Err: ErrClosed}
	}
	return w.buf.WriteString(s)
}

// Len returns the number of buffered bytes not yet committed.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Name returns the path the stream was created for.
func (w *Writer) Name() string {
	return w.name
}

// Close commits the buffered content to the backend. The commit happens
// exactly once; calling Close again is a no-op returning nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return w.b.Write(w.ctx, w.name, bytes.NewReader(w.buf.Bytes()), w.opts...)
}

var (
	_ io.ReadCloser  = (*Reader)(nil)
	_ io.WriteCloser = (*Writer)(nil)
)
