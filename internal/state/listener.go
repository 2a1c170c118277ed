package state

import fsutil "github.com/kk-code-lab/vfsnav/internal/fs"

// FileOpenedEvent is emitted when a file, not a directory, is opened. The
// navigator never reads file contents; the receiver decides what to do.
type FileOpenedEvent struct {
	Name string
	Path string
	Kind fsutil.FileKind
}

// Listener receives the navigator's outbound notifications.
type Listener interface {
	// ListingChanged is called after every dispatched action.
	ListingChanged(items []Entry, state NavigatorState)
	FileOpened(event FileOpenedEvent)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnListingChanged func(items []Entry, state NavigatorState)
	OnFileOpened     func(event FileOpenedEvent)
}

func (f ListenerFuncs) ListingChanged(items []Entry, state NavigatorState) {
	if f.OnListingChanged != nil {
		f.OnListingChanged(items, state)
	}
}

func (f ListenerFuncs) FileOpened(event FileOpenedEvent) {
	if f.OnFileOpened != nil {
		f.OnFileOpened(event)
	}
}
