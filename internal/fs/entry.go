package fs

// EntryKind distinguishes files from directories in a listing.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// DirectorySizeLabel is shown in the size column for directories.
const DirectorySizeLabel = "—"

// EmptyFileSizeLabel is the size label of a freshly created file.
const EmptyFileSizeLabel = "0 KB"

// Entry represents a single item of a directory listing.
//
// SizeLabel and ModifiedLabel are display strings regenerated on every
// listing; compare entries with SameItem rather than ==.
type Entry struct {
	Name          string
	Path          string
	Kind          EntryKind
	SizeLabel     string
	ModifiedLabel string
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// FileKind infers the entry's file kind from its extension.
func (e Entry) FileKind() FileKind {
	if e.IsDir() {
		return FileKindNone
	}
	return FileKindForName(e.Name)
}

// SameItem reports whether two entries denote the same item, ignoring the
// cosmetic labels.
func (e Entry) SameItem(other Entry) bool {
	return e.Name == other.Name && e.Path == other.Path && e.Kind == other.Kind
}
