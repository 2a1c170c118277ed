package view

// Action is a front-end event produced by the input handler. Actions that
// change the navigator itself are translated by Model.Update into
// state actions.
type Action interface{}

// ===== CURSOR =====

type CursorMoveAction struct {
	Delta int
}

type CursorPageAction struct {
	Direction int // -1 up, +1 down
}

type CursorHomeAction struct{}

type CursorEndAction struct{}

// ===== NAVIGATION =====

// OpenCurrentAction opens the item under the cursor.
type OpenCurrentAction struct{}

type BackAction struct{}

type HomeAction struct{}

type RefreshAction struct{}

// ===== PROMPTS =====

type BeginSearchAction struct{}

type BeginCreateAction struct{}

// BeginDeleteAction asks for confirmation before deleting the item under
// the cursor.
type BeginDeleteAction struct{}

type InputRuneAction struct {
	Rune rune
}

type InputBackspaceAction struct{}

// SubmitAction accepts the active prompt.
type SubmitAction struct{}

// CancelAction leaves the active prompt; in browse mode it clears the search.
type CancelAction struct{}

type ConfirmAction struct {
	Yes bool
}

// ===== APP =====

type ResizeAction struct {
	Width, Height int
}

type QuitAction struct{}

// SuspendAction hands the terminal back to the shell (Ctrl-Z).
type SuspendAction struct{}
