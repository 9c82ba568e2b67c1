package streamkit

import (
	"errors"
	"fmt"
)

// Common stream and backend errors
var (
	ErrNotExist       = errors.New("file does not exist")
	ErrExist          = errors.New("file already exists")
	ErrClosed         = errors.New("stream already closed")
	ErrNotSupported   = errors.New("operation not supported")
	ErrInvalidSize    = errors.New("invalid stream size")
	ErrUnknownBackend = errors.New("no backend registered for path kind")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsExist reports whether an error indicates that a file or directory
// already exists
func IsExist(err error) bool {
	return errors.Is(err, ErrExist)
}

// IsUnknownBackend reports whether an error indicates that a path classified
// to a kind with no registered backend
func IsUnknownBackend(err error) bool {
	return errors.Is(err, ErrUnknownBackend)
}
