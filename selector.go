package streamkit

import (
	"context"

	"github.com/gobwas/glob"
)

// FindFiles lists the files directly under dir whose names match the glob
// pattern. Supports *, ?, [abc] and {a,b} alternatives.
//
// Example:
//
//	entries, err := streamkit.FindFiles(ctx, b, `\flights`, "*.igc")
//
// Backends without listing support return ErrNotSupported.
func FindFiles(ctx context.Context, b Backend, dir, pattern string) ([]FileInfo, error) {
	lister, ok := b.(CanList)
	if !ok {
		return nil, &PathError{Op: "list", Path: dir, Err: ErrNotSupported}
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, &PathError{Op: "list", Path: dir, Err: err}
	}

	entries, err := lister.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		if g.Match(entry.Name) {
			files = append(files, entry)
		}
	}

	return files, nil
}
