package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	renderui "github.com/kk-code-lab/vfsnav/internal/ui/render"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
	"go.uber.org/zap"
)

const doubleClickThreshold = 300 * time.Millisecond

// Run draws the UI and processes events until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.logger.Info("navigator started", zap.String("path", app.CurrentPath()))
	app.renderer.Render(app.model)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.model)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.logger.Info("navigator stopped", zap.String("path", app.CurrentPath()))
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse moves the cursor to a clicked row and opens it on double click.
// The wheel scrolls the cursor.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.actionCh <- view.CursorMoveAction{Delta: -1}
		return
	case buttons&tcell.WheelDown != 0:
		app.actionCh <- view.CursorMoveAction{Delta: 1}
		return
	case buttons&tcell.Button1 == 0:
		return
	}
	if app.model.Mode != view.ModeBrowse {
		return
	}

	_, y := ev.Position()
	idx, ok := renderui.ItemAt(app.model, y, app.model.Height)
	if !ok {
		return
	}

	doubleClick := app.lastClickIdx == idx && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickIdx = idx
	app.lastClickTime = time.Now()

	app.actionCh <- view.CursorMoveAction{Delta: idx - app.model.Cursor}
	if doubleClick {
		app.lastClickIdx = -1
		app.actionCh <- view.OpenCurrentAction{}
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}
