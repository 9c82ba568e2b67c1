package streamkit

import "context"

// EnsureDir creates the directory at dirPath together with all missing
// intermediate directories, walking the path's segments left to right on the
// backend that owns it. Directories that already exist are tolerated, which
// makes the call idempotent. On failure, directories created so far remain in
// place; partial progress is not rolled back. An empty dirPath is a no-op.
func EnsureDir(ctx context.Context, dirPath string) error {
	if dirPath == "" {
		return nil
	}

	b, err := backendFor(Classify(dirPath))
	if err != nil {
		return &PathError{Op: "ensure", Path: dirPath, Err: err}
	}

	return ensureWith(ctx, b, dirPath)
}

func ensureWith(ctx context.Context, b Backend, dirPath string) error {
	for _, seg := range Segments(dirPath) {
		if err := b.CreateDir(ctx, seg); err != nil {
			return err
		}
	}
	return nil
}
