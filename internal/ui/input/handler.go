package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
)

// InputHandler converts tcell events to view actions
type InputHandler struct {
	actionChan chan view.Action
	model      *view.Model // Reference to current model for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan view.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetModel sets the model reference for mode checking
func (ih *InputHandler) SetModel(model *view.Model) {
	ih.model = model
}

// ProcessEvent converts a tcell event into an action. It returns false when
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- view.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() view.Mode {
	if ih.model == nil {
		return view.ModeBrowse
	}
	return ih.model.Mode
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- view.QuitAction{}
		return false
	}
	if ev.Key() == tcell.KeyCtrlZ {
		ih.actionChan <- view.SuspendAction{}
		return true
	}

	switch ih.mode() {
	case view.ModeSearch, view.ModeCreate:
		ih.processPromptKey(ev)
		return true
	case view.ModeConfirmDelete:
		ih.processConfirmKey(ev)
		return true
	}
	return ih.processBrowseKey(ev)
}

// processPromptKey edits the search term or the new file name.
func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- view.CancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- view.SubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- view.InputBackspaceAction{}
	case tcell.KeyUp:
		// Live search keeps the listing navigable
		if ih.mode() == view.ModeSearch {
			ih.actionChan <- view.CursorMoveAction{Delta: -1}
		}
	case tcell.KeyDown:
		if ih.mode() == view.ModeSearch {
			ih.actionChan <- view.CursorMoveAction{Delta: 1}
		}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			ih.actionChan <- view.InputRuneAction{Rune: r}
		}
	}
}

func (ih *InputHandler) processConfirmKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		ih.actionChan <- view.SubmitAction{}
	case tcell.KeyEscape:
		ih.actionChan <- view.ConfirmAction{Yes: false}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			ih.actionChan <- view.ConfirmAction{Yes: true}
		case 'n', 'N':
			ih.actionChan <- view.ConfirmAction{Yes: false}
		}
	}
}

func (ih *InputHandler) processBrowseKey(ev *tcell.EventKey) bool {
	// Handle special keys first
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- view.CancelAction{}
	case tcell.KeyUp:
		ih.actionChan <- view.CursorMoveAction{Delta: -1}
	case tcell.KeyDown:
		ih.actionChan <- view.CursorMoveAction{Delta: 1}
	case tcell.KeyPgUp:
		ih.actionChan <- view.CursorPageAction{Direction: -1}
	case tcell.KeyPgDn:
		ih.actionChan <- view.CursorPageAction{Direction: 1}
	case tcell.KeyHome:
		ih.actionChan <- view.CursorHomeAction{}
	case tcell.KeyEnd:
		ih.actionChan <- view.CursorEndAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- view.OpenCurrentAction{}
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- view.BackAction{}
	case tcell.KeyRune:
		return ih.processBrowseRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processBrowseRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- view.QuitAction{}
		return false
	case '~':
		ih.actionChan <- view.HomeAction{}
	case '/':
		ih.actionChan <- view.BeginSearchAction{}
	case 'n':
		ih.actionChan <- view.BeginCreateAction{}
	case 'd':
		ih.actionChan <- view.BeginDeleteAction{}
	case 'r':
		ih.actionChan <- view.RefreshAction{}
	}
	return true
}
