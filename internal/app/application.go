package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/vfsnav/internal/config"
	"github.com/kk-code-lab/vfsnav/internal/logging"
	statepkg "github.com/kk-code-lab/vfsnav/internal/state"
	inputui "github.com/kk-code-lab/vfsnav/internal/ui/input"
	renderui "github.com/kk-code-lab/vfsnav/internal/ui/render"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
	"go.uber.org/zap"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	session    *statepkg.Session
	model      *view.Model
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan view.Action
	shouldQuit bool
	logger     *zap.Logger

	lastClickIdx  int
	lastClickTime time.Time
}

// NewApplication opens the terminal and starts a session described by cfg.
func NewApplication(cfg *config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	app, err := newApplication(screen, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// newApplication wires a session to an initialized screen.
func newApplication(screen tcell.Screen, cfg *config.Config, opts ...statepkg.Option) (*Application, error) {
	store, err := cfg.Store()
	if err != nil {
		return nil, err
	}

	w, h := screen.Size()
	actionCh := make(chan view.Action, 10)
	app := &Application{
		screen:       screen,
		model:        view.NewModel(w, h),
		renderer:     renderui.NewRenderer(screen),
		input:        inputui.NewInputHandler(actionCh),
		actionCh:     actionCh,
		logger:       logging.L().Named("app"),
		lastClickIdx: -1,
	}

	opts = append([]statepkg.Option{
		statepkg.WithListener(app),
		statepkg.WithStartPath(cfg.StartPath),
		statepkg.WithRetainedMutations(cfg.RetainMutations),
	}, opts...)
	session, err := statepkg.NewSession(store, opts...)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	app.session = session
	app.logger = app.logger.With(zap.String("session_id", session.ID()))
	app.model.SetListing(session.Listing(), session.State())
	app.input.SetModel(app.model)
	return app, nil
}

// ListingChanged implements state.Listener.
func (app *Application) ListingChanged(items []statepkg.Entry, st statepkg.NavigatorState) {
	app.model.SetListing(items, st)
}

// FileOpened implements state.Listener.
func (app *Application) FileOpened(ev statepkg.FileOpenedEvent) {
	app.logger.Info("file opened", zap.String("path", ev.Path), zap.Stringer("kind", ev.Kind))
	app.model.SetNotice(fileOpenedNotice(ev))
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// CurrentPath returns the directory shown when the app stopped.
func (app *Application) CurrentPath() string {
	return app.session.State().CurrentPath
}
