package state

import (
	"fmt"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
)

// Action is the base interface for all navigator commands
type Action interface{}

// ===== NAVIGATION ACTIONS =====

// OpenAction enters a directory or opens a file.
type OpenAction struct {
	Item fsutil.Entry
}

type BackAction struct{}
type HomeAction struct{}

// RefreshAction recomposes the current listing without changing state.
type RefreshAction struct{}

// ===== SEARCH ACTIONS =====

type SearchAction struct {
	Term string
}

// ===== MUTATION ACTIONS =====

// CreateAction creates an empty file in the current directory.
type CreateAction struct {
	Name string
}

// DeleteAction removes an item from the current directory's listing.
type DeleteAction struct {
	Path string
}

func actionName(action Action) string {
	switch action.(type) {
	case OpenAction:
		return "open"
	case BackAction:
		return "back"
	case HomeAction:
		return "home"
	case RefreshAction:
		return "refresh"
	case SearchAction:
		return "search"
	case CreateAction:
		return "create"
	case DeleteAction:
		return "delete"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", action)
	}
}
