package state

import (
	"errors"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	"github.com/kk-code-lab/vfsnav/internal/search"
	"go.uber.org/zap"
)

// ErrUnknownAction is returned for action types the navigator does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Result is what a dispatched action produced.
type Result struct {
	Items  []Entry
	State  NavigatorState
	Opened *FileOpenedEvent
	Err    error
}

// transition is the outcome of reducing one action, applied by Dispatch only
// when err is nil.
type transition struct {
	next   NavigatorState
	opened *FileOpenedEvent
	mutate func()
}

// ===== DISPATCHER =====

// Dispatch applies action and emits the refreshed listing.
//
// A failing action leaves the state and MutationLog untouched; the listener
// still receives the current listing and the error is returned in Result.
func (s *Session) Dispatch(action Action) Result {
	name := actionName(action)
	prevPath := s.state.CurrentPath

	t, err := s.reduce(action)
	if err != nil {
		s.logger.Warn("action failed",
			zap.String("action", name),
			zap.String("path", prevPath),
			zap.Error(err),
		)
		s.emit(nil)
		return Result{Items: s.Listing(), State: s.State(), Err: err}
	}

	if t.mutate != nil {
		t.mutate()
	}
	if t.next.CurrentPath != prevPath && !s.retain {
		s.composer.Mutations.Discard(prevPath)
	}
	s.state = t.next
	s.recompose()

	s.logger.Debug("action dispatched",
		zap.String("action", name),
		zap.String("from", prevPath),
		zap.String("path", s.state.CurrentPath),
		zap.String("search", s.state.SearchTerm),
		zap.Int("items", len(s.visible)),
	)

	s.emit(t.opened)
	res := Result{Items: s.Listing(), State: s.State()}
	if t.opened != nil {
		opened := *t.opened
		res.Opened = &opened
	}
	return res
}

// reduce computes the transition for action without touching the session.
func (s *Session) reduce(action Action) (transition, error) {
	next := s.state.clone()

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case OpenAction:
		path, err := fsutil.Normalize(a.Item.Path)
		if err != nil {
			return transition{}, err
		}

		if a.Item.IsDir() {
			next.CurrentPath = path
			next.SelectedItem = nil
			return transition{next: next}, nil
		}

		item := a.Item
		item.Path = path
		next.SelectedItem = &item
		return transition{
			next: next,
			opened: &FileOpenedEvent{
				Name: item.Name,
				Path: item.Path,
				Kind: fsutil.FileKindForName(item.Name),
			},
		}, nil

	case BackAction:
		if next.CurrentPath == fsutil.Root {
			return transition{next: next}, nil
		}
		next.CurrentPath = fsutil.ParentOf(next.CurrentPath)
		next.SelectedItem = nil
		return transition{next: next}, nil

	case HomeAction:
		next.CurrentPath = fsutil.Root
		next.SelectedItem = nil
		return transition{next: next}, nil

	case RefreshAction:
		return transition{next: next}, nil

	// ===== SEARCH =====

	case SearchAction:
		next.SearchTerm = a.Term
		return transition{next: next}, nil

	// ===== MUTATIONS =====

	case CreateAction:
		dir := next.CurrentPath
		name, err := ValidateFileName(dir, a.Name)
		if err != nil {
			return transition{}, err
		}
		return transition{
			next: next,
			mutate: func() {
				_, _ = s.composer.CreateFile(dir, name)
			},
		}, nil

	case DeleteAction:
		target, err := fsutil.Normalize(a.Path)
		if err != nil {
			return transition{}, err
		}
		dir := next.CurrentPath
		if next.SelectedItem != nil && next.SelectedItem.Path == target {
			next.SelectedItem = nil
		}
		return transition{
			next: next,
			mutate: func() {
				s.composer.DeleteFile(dir, target)
			},
		}, nil

	default:
		return transition{}, &fsutil.PathError{Op: actionName(action), Path: next.CurrentPath, Err: ErrUnknownAction}
	}
}

func (s *Session) recompose() {
	s.listing = s.composer.Compose(s.state.CurrentPath)
	s.visible = search.Filter(s.listing, s.state.SearchTerm)
}

func (s *Session) emit(opened *FileOpenedEvent) {
	if s.listener == nil {
		return
	}
	if opened != nil {
		s.listener.FileOpened(*opened)
	}
	s.listener.ListingChanged(s.Listing(), s.State())
}
