package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	"github.com/kk-code-lab/vfsnav/internal/logging"
	"go.uber.org/zap"
)

// Entry is the listing item type shared with the UI packages.
type Entry = fsutil.Entry

// ===== STATE DEFINITIONS =====

// NavigatorState is the navigator's current location.
type NavigatorState struct {
	CurrentPath  string
	SelectedItem *Entry // last opened file, nil after every directory change
	SearchTerm   string
}

func (s NavigatorState) clone() NavigatorState {
	if s.SelectedItem != nil {
		item := *s.SelectedItem
		s.SelectedItem = &item
	}
	return s
}

// Session owns one NavigatorState and MutationLog pair over a shared Store.
// It is not safe for concurrent use.
type Session struct {
	id       string
	store    *fsutil.Store
	composer *Composer
	state    NavigatorState
	retain   bool

	listing []Entry // composed listing of CurrentPath
	visible []Entry // listing after the search filter

	listener Listener
	logger   *zap.Logger
}

// Option configures a Session.
type Option func(*Session) error

// WithListener routes listing and file-open notifications to l.
func WithListener(l Listener) Option {
	return func(s *Session) error {
		s.listener = l
		return nil
	}
}

// WithLogger replaces the global logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithStartPath sets the initial directory.
func WithStartPath(path string) Option {
	return func(s *Session) error {
		normalized, err := fsutil.Normalize(path)
		if err != nil {
			return fmt.Errorf("start path: %w", err)
		}
		s.state.CurrentPath = normalized
		return nil
	}
}

// WithRetainedMutations keeps created and deleted files when the session
// leaves a directory. By default they are dropped on navigation.
func WithRetainedMutations(retain bool) Option {
	return func(s *Session) error {
		s.retain = retain
		return nil
	}
}

// WithSizeLabel replaces the random size labels of declared files.
func WithSizeLabel(fn func(name string) string) Option {
	return func(s *Session) error {
		s.composer.SizeLabel = fn
		return nil
	}
}

// WithClock replaces time.Now for modified labels.
func WithClock(now func() time.Time) Option {
	return func(s *Session) error {
		s.composer.Now = now
		return nil
	}
}

// NewSession starts a navigator at "/" over store.
func NewSession(store *fsutil.Store, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("new session: nil store")
	}

	s := &Session{
		id:       uuid.NewString(),
		store:    store,
		composer: NewComposer(store),
		state:    NavigatorState{CurrentPath: fsutil.Root},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.logger == nil {
		s.logger = logging.L()
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))

	s.recompose()
	s.logger.Debug("session started", zap.String("path", s.state.CurrentPath), zap.Bool("retain_mutations", s.retain))
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns a copy of the navigator state.
func (s *Session) State() NavigatorState {
	return s.state.clone()
}

// Listing returns a copy of the filtered listing of the current directory.
func (s *Session) Listing() []Entry {
	return cloneEntries(s.visible)
}

// Store returns the backing store the session browses.
func (s *Session) Store() *fsutil.Store {
	return s.store
}

// Mutations exposes the session's MutationLog.
func (s *Session) Mutations() *MutationLog {
	return s.composer.Mutations
}

func cloneEntries(items []Entry) []Entry {
	if items == nil {
		return nil
	}
	out := make([]Entry, len(items))
	copy(out, items)
	return out
}
