package fs

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Directory declares one directory of a virtual tree and its ordered
// child names.
type Directory struct {
	Path     string   `mapstructure:"path"`
	Children []string `mapstructure:"children"`
}

// Store is the read-only backing "disk" of a virtual tree. It only knows the
// directories it was constructed with and is safe to share between sessions.
type Store struct {
	children map[string][]string
	order    []string
}

// NewStore validates dirs and builds an immutable store from them.
func NewStore(dirs ...Directory) (*Store, error) {
	s := &Store{
		children: make(map[string][]string, len(dirs)),
		order:    make([]string, 0, len(dirs)),
	}

	for _, dir := range dirs {
		path, err := Normalize(dir.Path)
		if err != nil {
			return nil, fmt.Errorf("declare directory: %w", err)
		}
		if _, exists := s.children[path]; exists {
			return nil, fmt.Errorf("declare directory %s: duplicate declaration", path)
		}

		names := make([]string, 0, len(dir.Children))
		seen := make(map[string]struct{}, len(dir.Children))
		for _, raw := range dir.Children {
			name := norm.NFC.String(raw)
			if !validSegment(name) {
				return nil, &PathError{Op: "declare child", Path: ChildPath(path, raw), Err: ErrInvalidName}
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("declare directory %s: duplicate child %q", path, name)
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}

		s.children[path] = names
		s.order = append(s.order, path)
	}

	return s, nil
}

// MustStore is NewStore for static trees known to be valid.
func MustStore(dirs ...Directory) *Store {
	s, err := NewStore(dirs...)
	if err != nil {
		panic(err)
	}
	return s
}

// ListChildren returns the declared child names of path in declaration order.
// Paths that were never declared fail with ErrPathNotFound.
func (s *Store) ListChildren(path string) ([]string, error) {
	names, ok := s.children[path]
	if !ok {
		return nil, &PathError{Op: "list", Path: path, Err: ErrPathNotFound}
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Has reports whether path is a declared directory.
func (s *Store) Has(path string) bool {
	_, ok := s.children[path]
	return ok
}

// Paths returns the declared directories in declaration order.
func (s *Store) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of declared directories.
func (s *Store) Len() int {
	return len(s.order)
}
