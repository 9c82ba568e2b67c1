package streamkit

import "strings"

// Kind identifies the storage backend that owns a path. Classification is a
// pure function of the path's leading characters: the same string always
// classifies identically.
type Kind int

const (
	// KindLocal is a conventional local filesystem path, relative or
	// drive-rooted.
	KindLocal Kind = iota

	// KindNetwork is a UNC network path of the form \\server\share\...
	// It is served by the local driver; the OS resolves the share.
	KindNetwork

	// KindDeviceSync is a path on the tethered mobile device, marked by a
	// single leading backslash: \subdir\file
	KindDeviceSync
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindNetwork:
		return "network"
	case KindDeviceSync:
		return "devicesync"
	default:
		return "unknown"
	}
}

// Classify determines which backend owns the given path.
//
// A single leading backslash followed by a non-backslash marks a device-sync
// path; a doubled leading backslash marks a UNC network path; everything else,
// including the empty string, is local.
func Classify(path string) Kind {
	if len(path) > 2 && path[0] == '\\' && path[1] != '\\' {
		return KindDeviceSync
	}
	if strings.HasPrefix(path, `\\`) {
		return KindNetwork
	}
	return KindLocal
}

// isSep reports whether c is a path separator. Both slash flavors are
// accepted everywhere, matching the platform the path syntax comes from.
func isSep(c byte) bool {
	return c == '/' || c == '\\'
}

// indexSep returns the position of the first separator at or after from,
// or -1 if there is none.
func indexSep(path string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(path); i++ {
		if isSep(path[i]) {
			return i
		}
	}
	return -1
}

// Segments returns the cumulative path prefixes to create, in order, when
// building the directory chain for path.
//
// For a UNC path the server and share components are merged into a single
// prefix: creating a directory at \\server alone is invalid, so the first
// emitted segment is already \\server\share. For a device-sync path the
// leading backslash denotes the device root and the first real segment
// follows directly. Empty segments are never emitted.
func Segments(path string) []string {
	if path == "" {
		return nil
	}

	kind := Classify(path)
	var segs []string
	pos := 0
	for {
		j := indexSep(path, pos)
		if j == 0 {
			switch kind {
			case KindNetwork:
				// skip the doubled separator, then consume the
				// server name so server+share stay one prefix
				j = indexSep(path, 2)
				if j >= 0 {
					j = indexSep(path, j+1)
				}
			default:
				// leading separator is the device root
				j = indexSep(path, 1)
			}
		}
		if j < 0 {
			segs = append(segs, path)
			return segs
		}
		if j > 0 && !isSep(path[j-1]) {
			segs = append(segs, path[:j])
		}
		pos = j + 1
		if pos >= len(path) {
			return segs
		}
	}
}

// Split splits a file path into its containing directory and bare file name
// at the last separator. The directory keeps its trailing separator; a path
// with no separator splits into ("", path).
func Split(path string) (dir, file string) {
	for i := len(path) - 1; i >= 0; i-- {
		if isSep(path[i]) {
			return path[:i+1], path[i+1:]
		}
	}
	return "", path
}
