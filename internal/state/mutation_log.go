package state

import fsutil "github.com/kk-code-lab/vfsnav/internal/fs"

// overlay holds the pending changes of one directory.
type overlay struct {
	created []fsutil.Entry
	deleted map[string]struct{}
}

// MutationLog records files created and deleted during a session, keyed by
// the directory they were made in. It is never written back to the Store.
type MutationLog struct {
	overlays map[string]*overlay
}

// NewMutationLog returns an empty log.
func NewMutationLog() *MutationLog {
	return &MutationLog{overlays: make(map[string]*overlay)}
}

func (l *MutationLog) overlayFor(dir string) *overlay {
	ov, ok := l.overlays[dir]
	if !ok {
		ov = &overlay{deleted: make(map[string]struct{})}
		l.overlays[dir] = ov
	}
	return ov
}

// RecordCreate adds entry to dir. A deletion marker for the same path is
// cleared and an entry already pending creation is not added twice.
func (l *MutationLog) RecordCreate(dir string, entry fsutil.Entry) {
	ov := l.overlayFor(dir)
	delete(ov.deleted, entry.Path)
	for _, existing := range ov.created {
		if existing.Path == entry.Path {
			return
		}
	}
	ov.created = append(ov.created, entry)
}

// RecordDelete marks target as removed from dir. Deleting an unknown path
// only leaves a marker behind.
func (l *MutationLog) RecordDelete(dir, target string) {
	ov := l.overlayFor(dir)
	kept := ov.created[:0]
	for _, existing := range ov.created {
		if existing.Path != target {
			kept = append(kept, existing)
		}
	}
	ov.created = kept
	ov.deleted[target] = struct{}{}
}

// Created returns the entries pending creation in dir, oldest first.
func (l *MutationLog) Created(dir string) []fsutil.Entry {
	ov, ok := l.overlays[dir]
	if !ok || len(ov.created) == 0 {
		return nil
	}
	out := make([]fsutil.Entry, len(ov.created))
	copy(out, ov.created)
	return out
}

// IsDeleted reports whether target carries a deletion marker in dir.
func (l *MutationLog) IsDeleted(dir, target string) bool {
	ov, ok := l.overlays[dir]
	if !ok {
		return false
	}
	_, deleted := ov.deleted[target]
	return deleted
}

// Discard drops every pending change of dir.
func (l *MutationLog) Discard(dir string) {
	delete(l.overlays, dir)
}

// Reset drops the whole log.
func (l *MutationLog) Reset() {
	l.overlays = make(map[string]*overlay)
}

// Len returns the number of directories with pending changes.
func (l *MutationLog) Len() int {
	return len(l.overlays)
}
