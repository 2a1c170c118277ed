package state

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
)

// Composer merges the Store's declared children with a MutationLog into the
// listing shown for a directory.
type Composer struct {
	Store     *fsutil.Store
	Mutations *MutationLog

	// SizeLabel renders the size column of a declared file. Defaults to a
	// random "<n> KB" label.
	SizeLabel func(name string) string
	// Now stamps the modified column. Defaults to time.Now.
	Now func() time.Time
}

// NewComposer returns a composer with an empty MutationLog.
func NewComposer(store *fsutil.Store) *Composer {
	return &Composer{
		Store:     store,
		Mutations: NewMutationLog(),
	}
}

// RandomSizeLabel is the default SizeLabel.
func RandomSizeLabel(string) string {
	return fmt.Sprintf("%d KB", rand.Intn(1000))
}

func (c *Composer) sizeLabel(name string) string {
	if c.SizeLabel != nil {
		return c.SizeLabel(name)
	}
	return RandomSizeLabel(name)
}

func (c *Composer) modifiedLabel() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return humanize.Time(now())
}

// Compose returns the listing of path. Directories missing from the Store
// compose to the pending creations only, so navigation stays renderable.
func (c *Composer) Compose(path string) []fsutil.Entry {
	names, err := c.Store.ListChildren(path)
	if errors.Is(err, fsutil.ErrPathNotFound) {
		// undeclared directories list as empty
		names = nil
	}

	created := c.Mutations.Created(path)
	items := make([]fsutil.Entry, 0, len(names)+len(created))
	present := make(map[string]struct{}, len(names)+len(created))
	modified := c.modifiedLabel()

	for _, name := range names {
		entry := c.project(path, name, modified)
		if c.Mutations.IsDeleted(path, entry.Path) {
			continue
		}
		present[entry.Path] = struct{}{}
		items = append(items, entry)
	}

	for _, entry := range created {
		if _, ok := present[entry.Path]; ok {
			continue
		}
		present[entry.Path] = struct{}{}
		entry.ModifiedLabel = modified
		items = append(items, entry)
	}

	return items
}

func (c *Composer) project(dir, name, modified string) fsutil.Entry {
	entry := fsutil.Entry{
		Name:          name,
		Path:          fsutil.ChildPath(dir, name),
		Kind:          fsutil.KindFile,
		ModifiedLabel: modified,
	}
	if fsutil.IsDirectoryName(name) {
		entry.Kind = fsutil.KindDirectory
		entry.SizeLabel = fsutil.DirectorySizeLabel
	} else {
		entry.SizeLabel = c.sizeLabel(name)
	}
	return entry
}

// ValidateFileName trims name and checks that it can become a single path
// segment inside dir.
func ValidateFileName(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &fsutil.PathError{Op: "create", Path: dir, Err: fsutil.ErrEmptyName}
	}
	if name == "." || name == ".." || strings.Contains(name, "/") {
		return "", &fsutil.PathError{Op: "create", Path: fsutil.ChildPath(dir, name), Err: fsutil.ErrInvalidName}
	}
	return name, nil
}

// CreateFile records a new empty file named name inside dir.
func (c *Composer) CreateFile(dir, name string) (fsutil.Entry, error) {
	name, err := ValidateFileName(dir, name)
	if err != nil {
		return fsutil.Entry{}, err
	}

	entry := fsutil.Entry{
		Name:          name,
		Path:          fsutil.ChildPath(dir, name),
		Kind:          fsutil.KindFile,
		SizeLabel:     fsutil.EmptyFileSizeLabel,
		ModifiedLabel: c.modifiedLabel(),
	}
	c.Mutations.RecordCreate(dir, entry)
	return entry, nil
}

// DeleteFile hides target from the listing of dir. It never fails.
func (c *Composer) DeleteFile(dir, target string) {
	c.Mutations.RecordDelete(dir, target)
}
