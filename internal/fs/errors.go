package fs

import "errors"

var (
	// ErrInvalidPath reports a malformed path string.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathNotFound reports a path that is not a declared directory.
	ErrPathNotFound = errors.New("path not found")
	// ErrEmptyName reports a blank name passed to a create operation.
	ErrEmptyName = errors.New("empty name")
	// ErrInvalidName reports a name that cannot be used as a single path segment.
	ErrInvalidName = errors.New("invalid name")
)

// PathError records an error and the operation and path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }
