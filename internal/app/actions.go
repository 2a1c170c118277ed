package app

import (
	"fmt"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	statepkg "github.com/kk-code-lab/vfsnav/internal/state"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
	"go.uber.org/zap"
)

// handleAction applies a front-end action and reports whether a redraw is needed.
func (app *Application) handleAction(action view.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case view.QuitAction:
		app.model.Update(action)
		app.shouldQuit = true
		return false
	case view.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	core := app.model.Update(action)
	if core == nil {
		return true
	}
	app.dispatch(core)
	return true
}

// dispatch forwards a navigator action to the session. The session reports
// the new listing and any opened file through the Listener methods.
func (app *Application) dispatch(action statepkg.Action) statepkg.Result {
	app.model.ClearMessages()
	res := app.session.Dispatch(action)
	if res.Err != nil {
		app.logger.Debug("dispatch rejected", zap.Error(res.Err))
		app.model.SetError(res.Err)
	}
	return res
}

// fileOpenedNotice describes an opened file for the status line.
func fileOpenedNotice(ev statepkg.FileOpenedEvent) string {
	if ev.Kind == fsutil.FileKindOther || ev.Kind == fsutil.FileKindNone {
		return fmt.Sprintf("opened %s", ev.Name)
	}
	return fmt.Sprintf("opened %s %s", ev.Kind, ev.Name)
}
