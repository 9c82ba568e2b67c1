package devicesync

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gobeaver/streamkit"
)

// memFile represents a file stored on the in-memory device
type memFile struct {
	content []byte
	modTime time.Time
}

// MemTransport is an in-memory Transport implementation. It is the built-in
// "memory" dialer, useful for tests and for running the toolchain without a
// tethered device.
type MemTransport struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]time.Time
}

// NewMemTransport creates an empty in-memory device
func NewMemTransport() *MemTransport {
	t := &MemTransport{
		files: make(map[string]*memFile),
		dirs:  make(map[string]time.Time),
	}

	// device root always exists
	t.dirs[`\`] = time.Now()

	return t
}

// normalize maps both separator flavors to backslash and strips the trailing
// separator, so \My Documents\ and \My Documents address the same entry.
func normalize(path string) string {
	path = strings.ReplaceAll(path, "/", `\`)
	for len(path) > 1 && path[len(path)-1] == '\\' {
		path = path[:len(path)-1]
	}
	return path
}

// parentOf returns the normalized containing directory of a normalized path.
func parentOf(path string) string {
	i := strings.LastIndexByte(path, '\\')
	if i <= 0 {
		return `\`
	}
	return path[:i]
}

func baseOf(path string) string {
	i := strings.LastIndexByte(path, '\\')
	return path[i+1:]
}

// Read implements Transport
func (t *MemTransport) Read(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.files[normalize(path)]
	if !ok {
		return nil, streamkit.ErrNotExist
	}

	data := make([]byte, len(f.content))
	copy(data, f.content)
	return data, nil
}

// Write implements Transport
func (t *MemTransport) Write(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	content := make([]byte, len(data))
	copy(content, data)

	t.files[normalize(path)] = &memFile{
		content: content,
		modTime: time.Now(),
	}
	return nil
}

// FileExists implements Transport
func (t *MemTransport) FileExists(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.files[normalize(path)]
	return ok, nil
}

// CreateDir implements Transport. Creating an existing directory is success.
func (t *MemTransport) CreateDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := normalize(path)
	if _, ok := t.dirs[key]; !ok {
		t.dirs[key] = time.Now()
	}
	return nil
}

// List implements Transport, returning the immediate entries of a directory.
func (t *MemTransport) List(ctx context.Context, path string) ([]streamkit.FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	dir := normalize(path)
	if _, ok := t.dirs[dir]; !ok {
		return nil, streamkit.ErrNotExist
	}

	var entries []streamkit.FileInfo
	for p, f := range t.files {
		if parentOf(p) != dir {
			continue
		}
		entries = append(entries, streamkit.FileInfo{
			Name:    baseOf(p),
			Path:    p,
			Size:    int64(len(f.content)),
			ModTime: f.modTime,
		})
	}
	for p, mod := range t.dirs {
		if p == dir || parentOf(p) != dir {
			continue
		}
		entries = append(entries, streamkit.FileInfo{
			Name:    baseOf(p),
			Path:    p,
			ModTime: mod,
			IsDir:   true,
		})
	}

	return entries, nil
}

// Close implements Transport
func (t *MemTransport) Close() error {
	return nil
}

var _ Transport = (*MemTransport)(nil)
