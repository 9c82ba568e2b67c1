package streamkit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

func init() {
	// Register test backends for the kinds the package-level operations
	// dispatch to. KindNetwork is left unregistered on purpose so the
	// unknown-backend path stays reachable in tests.
	RegisterBackend(KindLocal, func(cfg *Config) (Backend, error) {
		return testLocal, nil
	})
	RegisterBackend(KindDeviceSync, func(cfg *Config) (Backend, error) {
		return testDevice, nil
	})
}

var (
	testLocal  = newFakeBackend()
	testDevice = newFakeBackend()
)

// fakeBackend is a map-backed backend recording the calls the stream layer
// makes, shared by the package-level operation tests.
type fakeBackend struct {
	mu      sync.Mutex
	files   map[string][]byte
	created []string // CreateDir calls in order
	writes  int
	failDir string // CreateDir on this exact path fails
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{files: make(map[string][]byte)}
}

func (f *fakeBackend) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = make(map[string][]byte)
	f.created = nil
	f.writes = 0
	f.failDir = ""
}

func (f *fakeBackend) put(path string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = append([]byte(nil), data...)
}

func (f *fakeBackend) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := f.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeBackend) ReadAll(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.files[path]
	if !ok {
		return nil, &PathError{Op: "read", Path: path, Err: ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (f *fakeBackend) Write(ctx context.Context, path string, r io.Reader, opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &PathError{Op: "write", Path: path, Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = data
	f.writes++
	return nil
}

func (f *fakeBackend) FileExists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeBackend) CreateDir(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDir != "" && path == f.failDir {
		return &PathError{Op: "createdir", Path: path, Err: errors.New("device channel failure")}
	}
	f.created = append(f.created, path)
	return nil
}

func (f *fakeBackend) List(ctx context.Context, path string) ([]FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	trim := func(s string) string { return strings.TrimRight(s, `\/`) }

	var entries []FileInfo
	for p, data := range f.files {
		dir, name := Split(p)
		if trim(dir) != trim(path) {
			continue
		}
		entries = append(entries, FileInfo{
			Name: name,
			Path: p,
			Size: int64(len(data)),
		})
	}
	return entries, nil
}

var (
	_ Backend = (*fakeBackend)(nil)
	_ CanList = (*fakeBackend)(nil)
)
