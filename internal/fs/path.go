package fs

import "strings"

// Root is the top of every virtual tree.
const Root = "/"

// Normalize returns the canonical absolute form of path.
//
// The input must start with "/" and may not contain empty interior segments.
// A single trailing slash is dropped, "." segments are removed and ".."
// segments pop the previous segment (never above root).
func Normalize(path string) (string, error) {
	if path == "" || path[0] != '/' {
		return "", &PathError{Op: "normalize", Path: path, Err: ErrInvalidPath}
	}
	if path == Root {
		return Root, nil
	}

	trimmed := strings.TrimSuffix(path[1:], "/")
	if trimmed == "" {
		// "//" and friends
		return "", &PathError{Op: "normalize", Path: path, Err: ErrInvalidPath}
	}

	raw := strings.Split(trimmed, "/")
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		switch seg {
		case "":
			return "", &PathError{Op: "normalize", Path: path, Err: ErrInvalidPath}
		case ".":
			continue
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
			continue
		}
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return Root, nil
	}
	return "/" + strings.Join(segments, "/"), nil
}

// ParentOf strips the last segment of an already-normalized path.
// The parent of root is root.
func ParentOf(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx <= 0 {
		return Root
	}
	return path[:idx]
}

// ChildPath joins a normalized parent path and a single segment name.
func ChildPath(parent, name string) string {
	if parent == Root || parent == "" {
		return "/" + name
	}
	return parent + "/" + name
}

// Base returns the last segment of path, or "/" for root.
func Base(path string) string {
	if path == Root || path == "" {
		return Root
	}
	return path[strings.LastIndexByte(path, '/')+1:]
}

// Segments splits a normalized path into its names. Root has no segments.
func Segments(path string) []string {
	if path == Root || path == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

// IsDirectoryName reports whether a declared child name denotes a directory.
// Names without a dot are directories; a directory named "v1.2" is therefore
// listed as a file.
func IsDirectoryName(name string) bool {
	return !strings.Contains(name, ".")
}

func validSegment(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}
