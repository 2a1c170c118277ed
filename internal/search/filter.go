// Package search narrows directory listings down to the entries whose names
// contain a query, ignoring case.
package search

import (
	"strings"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	"golang.org/x/text/cases"
)

// Matcher is a case-insensitive substring predicate over entry names.
type Matcher struct {
	term   string
	folded string
}

// NewMatcher prepares term for repeated matching.
func NewMatcher(term string) Matcher {
	folded, _ := foldRunes(term)
	return Matcher{term: term, folded: folded}
}

// Term returns the query the matcher was built from.
func (m Matcher) Term() string {
	return m.term
}

// Empty reports whether the matcher accepts everything.
func (m Matcher) Empty() bool {
	return m.folded == ""
}

// Match reports whether name contains the term, ignoring case.
func (m Matcher) Match(name string) bool {
	if m.Empty() {
		return true
	}
	folded, _ := foldRunes(name)
	return strings.Contains(folded, m.folded)
}

// Span returns the rune range [start, end) of the first match in name.
func (m Matcher) Span(name string) (start, end int, ok bool) {
	if m.Empty() {
		return 0, 0, false
	}

	folded, offsets := foldRunes(name)
	idx := strings.Index(folded, m.folded)
	if idx < 0 {
		return 0, 0, false
	}
	stop := idx + len(m.folded)

	start = -1
	for i, off := range offsets {
		if off <= idx {
			start = i
		}
		if off < stop {
			end = i + 1
		}
	}
	return start, end, start >= 0
}

// Filter keeps the entries whose names contain term, preserving order.
// An empty term returns items unchanged.
func Filter(items []fsutil.Entry, term string) []fsutil.Entry {
	m := NewMatcher(term)
	if m.Empty() {
		return items
	}

	out := make([]fsutil.Entry, 0, len(items))
	for _, item := range items {
		if m.Match(item.Name) {
			out = append(out, item)
		}
	}
	return out
}

// foldRunes case-folds s one rune at a time and records, for every rune of
// s, the byte offset at which its folded form starts.
func foldRunes(s string) (string, []int) {
	if s == "" {
		return "", nil
	}

	caser := cases.Fold()
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s))
	for _, r := range s {
		offsets = append(offsets, b.Len())
		b.WriteString(caser.String(string(r)))
	}
	return b.String(), offsets
}
